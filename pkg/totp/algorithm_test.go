package totp_test

import (
	"testing"

	"github.com/dmitrymomot/otpkit/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		label   string
		want    totp.Algorithm
		wantErr bool
	}{
		{name: "sha1 lowercase", label: "sha1", want: totp.SHA1},
		{name: "sha1 uppercase", label: "SHA1", want: totp.SHA1},
		{name: "sha256 mixed case", label: "Sha256", want: totp.SHA256},
		{name: "sha512 with whitespace", label: " sha512 ", want: totp.SHA512},
		{name: "md5 rejected", label: "md5", wantErr: true},
		{name: "hyphenated rejected", label: "sha-1", wantErr: true},
		{name: "empty rejected", label: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := totp.ParseAlgorithm(tt.label)
			if tt.wantErr {
				require.ErrorIs(t, err, totp.ErrInvalidAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlgorithmValid(t *testing.T) {
	t.Parallel()
	assert.True(t, totp.SHA1.Valid())
	assert.True(t, totp.SHA256.Valid())
	assert.True(t, totp.SHA512.Valid())
	assert.False(t, totp.Algorithm("MD5").Valid())
	assert.False(t, totp.Algorithm("").Valid())
}

func TestAlgorithmHashSizes(t *testing.T) {
	t.Parallel()
	sizes := map[totp.Algorithm]int{
		totp.SHA1:   20,
		totp.SHA256: 32,
		totp.SHA512: 64,
	}
	for alg, size := range sizes {
		assert.Equal(t, size, alg.New()().Size(), "unexpected digest size for %s", alg)
	}
}
