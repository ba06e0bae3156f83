package codec

import "errors"

var (
	ErrInvalidBase32Data = errors.New("invalid base32 data")
	ErrInvalidBase64Data = errors.New("invalid base64 data")
)
