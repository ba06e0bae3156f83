package totp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/dmitrymomot/otpkit/pkg/codec"
)

// recoveryCodeBytes is the entropy per recovery code: 10 bytes encode to
// exactly 16 Base32 characters with no padding.
const recoveryCodeBytes = 10

// GenerateRecoveryCodes creates single-use backup codes for account recovery.
// Each code is 16 Base32 characters split into two hyphenated groups (80 bits
// of entropy), so it survives being read aloud or written down.
func GenerateRecoveryCodes(count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidRecoveryCodeCount
	}

	codes := make([]string, count)
	for i := 0; i < count; i++ {
		raw := make([]byte, recoveryCodeBytes)
		if _, err := rand.Read(raw); err != nil {
			return nil, errors.Join(ErrFailedToGenerateRecoveryCode, err)
		}
		encoded := codec.EncodeBase32(raw)
		codes[i] = encoded[:8] + "-" + encoded[8:]
	}
	return codes, nil
}

// HashRecoveryCode creates a SHA-256 hash for storage. Codes are normalized
// first, so user input with different casing or missing hyphens still matches.
func HashRecoveryCode(code string) string {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(code), "-", ""))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// VerifyRecoveryCode compares a user-supplied code against a stored hash in
// constant time.
func VerifyRecoveryCode(code, hashedCode string) bool {
	computed := HashRecoveryCode(code)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedCode)) == 1
}
