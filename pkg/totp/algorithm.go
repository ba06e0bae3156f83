package totp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
)

// Algorithm identifies the HMAC hash function used for OTP computation. The
// set is closed: only the three members below exist, and ParseAlgorithm is the
// only way to obtain one from untrusted input.
type Algorithm string

const (
	SHA1   Algorithm = "SHA1" // RFC 6238 default
	SHA256 Algorithm = "SHA256"
	SHA512 Algorithm = "SHA512"
)

// ParseAlgorithm validates a case-insensitive algorithm label. Unrecognized
// labels fail with ErrInvalidAlgorithm.
func ParseAlgorithm(label string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "SHA1":
		return SHA1, nil
	case "SHA256":
		return SHA256, nil
	case "SHA512":
		return SHA512, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, label)
	}
}

// Valid reports whether a is one of the three closed-set members.
func (a Algorithm) Valid() bool {
	switch a {
	case SHA1, SHA256, SHA512:
		return true
	}
	return false
}

// New returns the hash constructor for HMAC computation. It panics on an
// Algorithm value that did not come from the package constants or
// ParseAlgorithm.
func (a Algorithm) New() func() hash.Hash {
	switch a {
	case SHA1:
		return sha1.New
	case SHA256:
		return sha256.New
	case SHA512:
		return sha512.New
	}
	panic(fmt.Sprintf("totp: unknown algorithm %q", string(a)))
}

// String returns the canonical uppercase label, as used in otpauth URIs.
func (a Algorithm) String() string {
	return string(a)
}
