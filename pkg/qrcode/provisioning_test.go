package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/dmitrymomot/otpkit/pkg/qrcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURI = "otpauth://totp/Acme:alice@example.com?algorithm=SHA1&digits=6&issuer=Acme&period=30&secret=ABCDEFGHIJKLMNOP"

func TestProvisioning(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Provisioning("", 256)
		require.ErrorIs(t, err, qrcode.ErrInvalidProvisioningURI)
		assert.Nil(t, result)
	})

	t.Run("rejects whitespace-only content", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Provisioning("   \t\n", 256)
		require.ErrorIs(t, err, qrcode.ErrInvalidProvisioningURI)
		assert.Nil(t, result)
	})

	t.Run("rejects non-otpauth content", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Provisioning("https://example.com", 256)
		require.ErrorIs(t, err, qrcode.ErrInvalidProvisioningURI)
		assert.Nil(t, result)
	})

	t.Run("renders a decodable PNG", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Provisioning(testURI, 256)
		require.NoError(t, err)
		require.NotEmpty(t, result)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
		assert.Equal(t, 256, img.Bounds().Dy())
	})

	t.Run("falls back to the default size", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Provisioning(testURI, 0)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
	})
}

func TestProvisioningDataURI(t *testing.T) {
	t.Parallel()

	t.Run("propagates validation errors", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.ProvisioningDataURI("https://example.com", 256)
		assert.ErrorIs(t, err, qrcode.ErrInvalidProvisioningURI)
	})

	t.Run("produces an embeddable data URI", func(t *testing.T) {
		t.Parallel()
		dataURI, err := qrcode.ProvisioningDataURI(testURI, 128)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(dataURI, "data:image/png;base64,"))

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, "data:image/png;base64,"))
		require.NoError(t, err)

		_, err = png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
	})
}
