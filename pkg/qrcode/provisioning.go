package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrInvalidProvisioningURI is returned when the content is empty or not
	// an otpauth URI.
	ErrInvalidProvisioningURI = errors.New("invalid provisioning URI")
	// ErrFailedToGenerateQRCode is returned when QR code rendering fails.
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
)

// defaultSize is the image size in pixels used when no size is specified.
const defaultSize = 256

// Provisioning renders an otpauth:// URI as a PNG QR code of the given size.
// A size of zero or less falls back to 256 pixels. High error correction is
// used since provisioning codes are scanned once from a screen and secrets do
// not get a second chance at enrollment.
func Provisioning(uri string, size int) ([]byte, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("%w: empty content", ErrInvalidProvisioningURI)
	}
	if !strings.HasPrefix(uri, "otpauth://") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProvisioningURI, uri)
	}
	if size <= 0 {
		size = defaultSize
	}

	png, err := skipqrcode.Encode(uri, skipqrcode.High, size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

// ProvisioningDataURI renders an otpauth:// URI as a base64 PNG data URI,
// ready for embedding into an HTML <img> tag:
//
//	<img src="{{.QRCode}}">
func ProvisioningDataURI(uri string, size int) (string, error) {
	png, err := Provisioning(uri, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
