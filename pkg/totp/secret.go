package totp

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/dmitrymomot/otpkit/pkg/codec"
)

const (
	// MinSecretSize is the minimum accepted length for caller-supplied secret
	// material: 128 bits, per RFC 4226 section 4.
	MinSecretSize = 16
	// GeneratedSecretSize is the length of internally generated secrets. It
	// matches the SHA-512 output size so the secret never needs stretching.
	GeneratedSecretSize = 64
)

// Secret holds raw shared-secret material for OTP computation. It is immutable
// after construction except for Scrub, which destroys the material in place.
// Construct one from raw bytes, from encoded text, or with GenerateSecret.
type Secret struct {
	raw      []byte
	scrubbed bool
}

// NewSecret copies raw into a new Secret. It fails with ErrInvalidSecret when
// raw is shorter than MinSecretSize; short secrets are rejected, never padded.
func NewSecret(raw []byte) (*Secret, error) {
	if len(raw) < MinSecretSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidSecret, len(raw))
	}
	s := &Secret{raw: make([]byte, len(raw))}
	copy(s.raw, raw)
	return s, nil
}

// GenerateSecret creates a fresh secret of GeneratedSecretSize random bytes
// from the system's cryptographically secure source.
func GenerateSecret() (*Secret, error) {
	raw := make([]byte, GeneratedSecretSize)
	if _, err := rand.Read(raw); err != nil {
		return nil, errors.Join(ErrFailedToGenerateSecret, err)
	}
	return &Secret{raw: raw}, nil
}

// SecretFromBase32 decodes a Base32-encoded secret. The encoding error is
// surfaced as-is so callers can distinguish malformed text from short secrets.
func SecretFromBase32(encoded string) (*Secret, error) {
	raw, err := codec.DecodeBase32(encoded)
	if err != nil {
		return nil, err
	}
	return NewSecret(raw)
}

// SecretFromBase64 decodes a Base64-encoded secret.
func SecretFromBase64(encoded string) (*Secret, error) {
	raw, err := codec.DecodeBase64(encoded)
	if err != nil {
		return nil, err
	}
	return NewSecret(raw)
}

// Len returns the number of bytes of secret material.
func (s *Secret) Len() int {
	return len(s.raw)
}

// Bytes returns a copy of the raw secret material.
func (s *Secret) Bytes() []byte {
	raw := make([]byte, len(s.raw))
	copy(raw, s.raw)
	return raw
}

// Base32 returns the secret encoded as RFC 4648 Base32 text, the form
// authenticator apps expect.
func (s *Secret) Base32() string {
	return codec.EncodeBase32(s.raw)
}

// Base64 returns the secret encoded as standard Base64 text.
func (s *Secret) Base64() string {
	return codec.EncodeBase64(s.raw)
}

// Scrub overwrites every byte of the backing storage with a freshly generated
// random value guaranteed to differ from the byte it replaces, so the original
// material cannot be recovered by diffing reclaimed memory. A second call
// fails with ErrSecretScrubbed.
func (s *Secret) Scrub() error {
	if s.scrubbed {
		return ErrSecretScrubbed
	}

	fresh := make([]byte, len(s.raw))
	if _, err := rand.Read(fresh); err != nil {
		return errors.Join(ErrFailedToScrubSecret, err)
	}
	for i := range s.raw {
		if fresh[i] == s.raw[i] {
			fresh[i] ^= 0x01
		}
		s.raw[i] = fresh[i]
	}
	s.scrubbed = true
	return nil
}

// WithSecret runs fn with the secret and scrubs it on every exit path,
// including a panic inside fn. Errors from fn and from scrubbing are joined.
func WithSecret(s *Secret, fn func(*Secret) error) (err error) {
	defer func() {
		if scrubErr := s.Scrub(); scrubErr != nil {
			err = errors.Join(err, scrubErr)
		}
	}()
	return fn(s)
}
