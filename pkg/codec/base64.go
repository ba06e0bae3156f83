package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// EncodeBase64 encodes raw bytes as standard RFC 4648 Base64 text.
func EncodeBase64(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeBase64 decodes standard RFC 4648 Base64 text back to raw bytes. It
// fails with ErrInvalidBase64Data when the length is not a multiple of 4, the
// trailing '=' run is longer than 2, or any non-padding character falls outside
// the alphabet. Validation happens up front rather than relying on the stdlib
// decoder, which silently tolerates some malformed inputs.
func DecodeBase64(encoded string) ([]byte, error) {
	if encoded == "" {
		return []byte{}, nil
	}
	if len(encoded)%4 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 4: %q", ErrInvalidBase64Data, len(encoded), encoded)
	}

	padding := 0
	for padding < len(encoded) && encoded[len(encoded)-1-padding] == '=' {
		padding++
	}
	if padding > 2 {
		return nil, fmt.Errorf("%w: invalid padding length %d: %q", ErrInvalidBase64Data, padding, encoded)
	}

	for i := 0; i < len(encoded)-padding; i++ {
		if !isBase64Char(encoded[i]) {
			return nil, fmt.Errorf("%w: character %q is not in the alphabet: %q", ErrInvalidBase64Data, encoded[i], encoded)
		}
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %q", ErrInvalidBase64Data, encoded), err)
	}
	return raw, nil
}

func isBase64Char(c byte) bool {
	return c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' ||
		c == '+' || c == '/'
}
