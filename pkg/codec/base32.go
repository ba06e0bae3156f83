package codec

import (
	"fmt"
	"strings"
)

// base32Dictionary is the RFC 4648 Base32 alphabet.
const base32Dictionary = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// base32CharCount maps the number of raw bytes in a group (0-5) to the number
// of non-padding characters the group encodes to.
var base32CharCount = [6]int{0, 2, 4, 5, 7, 8}

// base32ByteCount is the inverse of base32CharCount, indexed by character
// count. Entries of -1 mark character counts no valid group can have.
var base32ByteCount = [9]int{0, -1, 1, -1, 2, 3, -1, 4, 5}

// base32Reverse maps a byte to its 5-bit dictionary index, or -1 when the byte
// is not part of the alphabet.
var base32Reverse = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(base32Dictionary); i++ {
		t[base32Dictionary[i]] = int8(i)
	}
	return t
}()

// EncodeBase32 encodes raw bytes as RFC 4648 Base32 text. The output length is
// always a multiple of 8; a final partial group of 1-4 bytes is zero-padded
// before splitting and the missing characters are replaced with '='. Empty
// input encodes to the empty string.
func EncodeBase32(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow((len(raw) + 4) / 5 * 8)

	for i := 0; i < len(raw); i += 5 {
		group := raw[i:min(i+5, len(raw))]

		// Pack the group into a 40-bit big-endian value, zero-padded on
		// the right, then peel off 5-bit dictionary indices from the top.
		var buf [5]byte
		copy(buf[:], group)
		v := uint64(buf[0])<<32 | uint64(buf[1])<<24 | uint64(buf[2])<<16 |
			uint64(buf[3])<<8 | uint64(buf[4])

		chars := base32CharCount[len(group)]
		for j := 0; j < chars; j++ {
			sb.WriteByte(base32Dictionary[(v>>(35-5*j))&0x1f])
		}
		for k := 0; k < 8-chars; k++ {
			sb.WriteByte('=')
		}
	}

	return sb.String()
}

// DecodeBase32 decodes RFC 4648 Base32 text back to raw bytes. Lowercase input
// is accepted and canonicalized to uppercase first. It fails with
// ErrInvalidBase32Data when the length is not a multiple of 8, the trailing '='
// run is not one of {0,1,3,4,6}, or any non-padding character falls outside the
// dictionary.
func DecodeBase32(encoded string) ([]byte, error) {
	if encoded == "" {
		return []byte{}, nil
	}
	if len(encoded)%8 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 8: %q", ErrInvalidBase32Data, len(encoded), encoded)
	}

	canonical := strings.ToUpper(encoded)

	padding := 0
	for padding < len(canonical) && canonical[len(canonical)-1-padding] == '=' {
		padding++
	}
	switch padding {
	case 0, 1, 3, 4, 6:
	default:
		return nil, fmt.Errorf("%w: invalid padding length %d: %q", ErrInvalidBase32Data, padding, encoded)
	}

	raw := make([]byte, 0, len(canonical)/8*5)

	for i := 0; i < len(canonical); i += 8 {
		group := canonical[i : i+8]

		chars := 8
		if i+8 == len(canonical) {
			chars = 8 - padding
		}

		var v uint64
		for j := 0; j < chars; j++ {
			idx := base32Reverse[group[j]]
			if idx < 0 {
				return nil, fmt.Errorf("%w: character %q is not in the dictionary: %q", ErrInvalidBase32Data, group[j], encoded)
			}
			v |= uint64(idx) << (35 - 5*j)
		}

		// Emit only the bytes the original group contained; the rest of
		// the 40-bit value is the zero padding added during encoding.
		for j := 0; j < base32ByteCount[chars]; j++ {
			raw = append(raw, byte(v>>(32-8*j)))
		}
	}

	return raw, nil
}
