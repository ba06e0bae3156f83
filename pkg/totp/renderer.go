package totp

import (
	"fmt"
	"strings"
)

const (
	// MinDigits is the smallest passcode width RFC 4226 permits.
	MinDigits = 6
	// DefaultDigits is the width authenticator apps expect by default.
	DefaultDigits = 6

	// steamAlphabet is the character set Steam Guard draws passcodes from.
	steamAlphabet = "23456789BCDFGHJKMNPQRTVWXY"
	// steamDigits is the fixed Steam Guard passcode length.
	steamDigits = 5
)

type rendererKind uint8

const (
	renderDecimal rendererKind = iota
	renderSteam
)

// Renderer maps a computed HMAC to a user-visible passcode string. The variant
// set is closed: fixed-width decimal (DigitsRenderer) or Steam Guard style
// (SteamRenderer). The zero value renders 6-digit decimal codes.
type Renderer struct {
	kind   rendererKind
	digits int
}

// DigitsRenderer returns a renderer producing zero-padded decimal passcodes of
// the given width. Widths below MinDigits fail with ErrInvalidDigits. There is
// no upper bound, but the truncated integer carries at most 31 bits, so
// positions beyond the tenth are always zero.
func DigitsRenderer(digits int) (Renderer, error) {
	if digits < MinDigits {
		return Renderer{}, fmt.Errorf("%w: got %d", ErrInvalidDigits, digits)
	}
	return Renderer{kind: renderDecimal, digits: digits}, nil
}

// SteamRenderer returns a renderer producing 5-character Steam Guard
// passcodes. The scheme is unstandardized; this follows the behavior observed
// in Steam's own apps on a best-effort basis.
func SteamRenderer() Renderer {
	return Renderer{kind: renderSteam, digits: steamDigits}
}

// Digits returns the passcode width this renderer produces.
func (r Renderer) Digits() int {
	if r.kind == renderDecimal && r.digits == 0 {
		return DefaultDigits
	}
	return r.digits
}

// Render truncates an HMAC into a passcode string. The HMAC must be at least
// 20 bytes, which every supported algorithm guarantees.
func (r Renderer) Render(mac []byte) string {
	p := truncate(mac)

	switch r.kind {
	case renderSteam:
		var sb strings.Builder
		sb.Grow(steamDigits)
		for i := 0; i < steamDigits; i++ {
			sb.WriteByte(steamAlphabet[p%uint32(len(steamAlphabet))])
			p /= uint32(len(steamAlphabet))
		}
		return sb.String()
	default:
		return fmt.Sprintf("%0*d", r.Digits(), p%pow10(r.Digits()))
	}
}

// truncate applies RFC 4226 section 5.3 dynamic truncation: the low nibble of
// the last HMAC byte selects a 4-byte window, whose big-endian value is masked
// to 31 bits.
func truncate(mac []byte) uint32 {
	offset := mac[len(mac)-1] & 0x0f
	return uint32(mac[offset]&0x7f)<<24 |
		uint32(mac[offset+1])<<16 |
		uint32(mac[offset+2])<<8 |
		uint32(mac[offset+3])
}

// pow10 saturates at 10^10, which already exceeds the 31-bit truncation range.
func pow10(n int) uint32 {
	if n > 10 {
		n = 10
	}
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	if p > 1<<31 {
		return 1 << 31
	}
	return uint32(p)
}
