// Package codec provides strictly-validating Base32 and Base64 codecs for moving
// secret material between raw bytes and human-transcribable text.
//
// Both codecs follow RFC 4648: Base32 uses the dictionary
// ABCDEFGHIJKLMNOPQRSTUVWXYZ234567, Base64 the standard A-Za-z0-9+/ alphabet,
// both with '=' padding. Unlike the permissive decoders in the standard library,
// DecodeBase32 and DecodeBase64 reject any input whose length, padding run, or
// character set deviates from the canonical form, so a string that decodes here
// is guaranteed to round-trip byte-for-byte through the matching encoder.
//
// Lowercase Base32 input is accepted and canonicalized to uppercase before
// validation; everything else is rejected as-is.
//
// # Error Handling
//
// Decoding failures wrap the package sentinels ErrInvalidBase32Data and
// ErrInvalidBase64Data together with the offending string. Inspect them with
// errors.Is.
package codec
