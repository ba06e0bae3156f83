package totp_test

import (
	"testing"

	"github.com/dmitrymomot/otpkit/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// macWithTruncatedValue builds a 20-byte HMAC whose dynamic truncation yields
// exactly p: the last byte's low nibble points the offset at position zero,
// where p sits big-endian.
func macWithTruncatedValue(p uint32) []byte {
	mac := make([]byte, 20)
	mac[0] = byte(p >> 24 & 0x7f)
	mac[1] = byte(p >> 16)
	mac[2] = byte(p >> 8)
	mac[3] = byte(p)
	mac[19] = 0x00
	return mac
}

func TestDigitsRenderer(t *testing.T) {
	t.Parallel()

	t.Run("rejects fewer than six digits", func(t *testing.T) {
		t.Parallel()
		_, err := totp.DigitsRenderer(5)
		require.ErrorIs(t, err, totp.ErrInvalidDigits)
		_, err = totp.DigitsRenderer(0)
		require.ErrorIs(t, err, totp.ErrInvalidDigits)
	})

	t.Run("zero pads to the configured width", func(t *testing.T) {
		t.Parallel()
		r, err := totp.DigitsRenderer(8)
		require.NoError(t, err)
		assert.Equal(t, "00000037", r.Render(macWithTruncatedValue(37)))
	})

	t.Run("reduces modulo a power of ten", func(t *testing.T) {
		t.Parallel()
		r, err := totp.DigitsRenderer(6)
		require.NoError(t, err)
		assert.Equal(t, "345678", r.Render(macWithTruncatedValue(12345678)))
	})

	t.Run("widths beyond the truncation range only add zeros", func(t *testing.T) {
		t.Parallel()
		r, err := totp.DigitsRenderer(12)
		require.NoError(t, err)
		assert.Equal(t, "000012345678", r.Render(macWithTruncatedValue(12345678)))
	})

	t.Run("reports its width", func(t *testing.T) {
		t.Parallel()
		r, err := totp.DigitsRenderer(9)
		require.NoError(t, err)
		assert.Equal(t, 9, r.Digits())
	})
}

func TestSteamRenderer(t *testing.T) {
	t.Parallel()
	r := totp.SteamRenderer()
	assert.Equal(t, 5, r.Digits())

	tests := []struct {
		name string
		p    uint32
		want string
	}{
		// Alphabet is 23456789BCDFGHJKMNPQRTVWXY; remainders are emitted
		// least-significant first with no reversal.
		{name: "zero", p: 0, want: "22222"},
		{name: "one", p: 1, want: "32222"},
		{name: "alphabet length", p: 26, want: "23222"},
		{name: "alphabet length plus two", p: 28, want: "43222"},
		{name: "max truncated value", p: 0x7fffffff, want: "WXPBQ"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, r.Render(macWithTruncatedValue(tt.p)))
		})
	}
}

func TestRendererDeterminism(t *testing.T) {
	t.Parallel()
	mac := macWithTruncatedValue(987654321)
	r, err := totp.DigitsRenderer(6)
	require.NoError(t, err)

	first := r.Render(mac)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Render(mac))
	}
}
