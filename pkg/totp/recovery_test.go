package totp_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/otpkit/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecoveryCodes(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive counts", func(t *testing.T) {
		t.Parallel()
		_, err := totp.GenerateRecoveryCodes(0)
		assert.ErrorIs(t, err, totp.ErrInvalidRecoveryCodeCount)
		_, err = totp.GenerateRecoveryCodes(-3)
		assert.ErrorIs(t, err, totp.ErrInvalidRecoveryCodeCount)
	})

	t.Run("produces unique hyphenated codes", func(t *testing.T) {
		t.Parallel()
		codes, err := totp.GenerateRecoveryCodes(10)
		require.NoError(t, err)
		require.Len(t, codes, 10)

		seen := make(map[string]struct{}, len(codes))
		for _, code := range codes {
			assert.Len(t, code, 17)
			parts := strings.Split(code, "-")
			require.Len(t, parts, 2)
			for _, part := range parts {
				assert.Regexp(t, "^[A-Z2-7]{8}$", part)
			}
			seen[code] = struct{}{}
		}
		assert.Len(t, seen, len(codes), "codes must be unique")
	})
}

func TestHashRecoveryCode(t *testing.T) {
	t.Parallel()

	hash := totp.HashRecoveryCode("ABCDEFGH-23456722")
	assert.Len(t, hash, 64)

	t.Run("normalizes case and hyphens", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, hash, totp.HashRecoveryCode("abcdefgh-23456722"))
		assert.Equal(t, hash, totp.HashRecoveryCode("ABCDEFGH23456722"))
		assert.Equal(t, hash, totp.HashRecoveryCode("  ABCDEFGH-23456722  "))
	})

	t.Run("different codes hash differently", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, hash, totp.HashRecoveryCode("ABCDEFGH-23456723"))
	})
}

func TestVerifyRecoveryCode(t *testing.T) {
	t.Parallel()

	codes, err := totp.GenerateRecoveryCodes(1)
	require.NoError(t, err)
	code := codes[0]
	hashed := totp.HashRecoveryCode(code)

	assert.True(t, totp.VerifyRecoveryCode(code, hashed))
	assert.True(t, totp.VerifyRecoveryCode(strings.ToLower(code), hashed))
	assert.False(t, totp.VerifyRecoveryCode("WRONGCOD-WRONGCOD", hashed))
	assert.False(t, totp.VerifyRecoveryCode(code, totp.HashRecoveryCode("other")))
}
