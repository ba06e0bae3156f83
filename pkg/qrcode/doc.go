// Package qrcode renders otpauth:// provisioning URIs as QR code images for
// authenticator-app enrollment, either as raw PNG bytes or as a data-URI
// string that can be embedded directly into an <img> tag.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode that adds
// otpauth URI validation, sensible defaults, and the data-URI convenience for
// web applications.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/otpkit/pkg/qrcode"
//	    "github.com/dmitrymomot/otpkit/pkg/totp"
//	)
//
//	uri, _ := engine.URI("Acme", "alice@example.com")
//
//	// Create PNG bytes
//	img, err := qrcode.Provisioning(uri, 256)
//
//	// Or a base64 data URI for templates: <img src="{{.QRCode}}">
//	dataURI, err := qrcode.ProvisioningDataURI(uri, 256)
//
// # Error Handling
//
//   • ErrInvalidProvisioningURI – the content is empty or not an otpauth URI.
//   • ErrFailedToGenerateQRCode – the underlying library could not render it.
//
// Compare with errors.Is.
package qrcode
