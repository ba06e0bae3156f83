// Package totp computes and verifies Time-based One-Time Passwords (RFC 6238)
// built atop HOTP (RFC 4226), together with the supporting pieces an
// application needs around them: secret lifecycle management with explicit
// scrubbing, provisioning URI construction for authenticator apps, AES-256-GCM
// encryption helpers for persisting secrets, and single-use recovery codes.
//
// This is a library, not a service. Replay protection (remembering which
// counters were already consumed) and transport are left to the caller.
//
// # Architecture
//
// The package is divided into cohesive layers.
//
//   • secret    – secret.go owns raw secret material: construction from raw
//     bytes or Base32/Base64 text, generation from the system random source,
//     and the Scrub/WithSecret pair that overwrites the backing storage with
//     fresh random bytes on release.
//
//   • engine    – engine.go derives a counter from wall-clock time, computes
//     an HMAC over its 8-byte big-endian encoding using the algorithm from
//     algorithm.go, and verifies candidate passcodes against a window of past
//     time steps with constant-time comparison.
//
//   • renderer  – renderer.go truncates an HMAC into a user-visible passcode
//     via RFC 4226 dynamic truncation, as a closed set of variants: zero-padded
//     fixed-width decimal or 5-character Steam Guard style.
//
//   • crypto    – crypto.go implements symmetric encryption/decryption of
//     secret material with AES-256-GCM plus key generation utilities, and
//     recovery.go creates, hashes and verifies single-use recovery codes.
//
// Configuration such as the encryption key is loaded once per process via the
// env tag aware loader in config.go. The required environment variable is
// TOTP_ENCRYPTION_KEY holding a Base64-encoded 32-byte key.
//
// # Usage
//
// The minimal happy path for enrolling a user looks like this:
//
//	package main
//
//	import (
//	    "fmt"
//	    "github.com/dmitrymomot/otpkit/pkg/totp"
//	)
//
//	func main() {
//	    // 1. Create a brand-new secret and an engine over it
//	    secret, _ := totp.GenerateSecret()
//	    engine, _ := totp.NewEngine(secret)
//
//	    // 2. Persist the secret encrypted in your datastore
//	    key, _ := totp.LoadEncryptionKey()
//	    encSecret, _ := totp.EncryptSecret(secret, key)
//	    _ = encSecret
//
//	    // 3. Display the bootstrap URI/QR code to the user
//	    uri, _ := engine.URI("Acme", "alice@example.com")
//	    fmt.Println(uri)
//
//	    // 4. Later – validate an OTP provided by the user
//	    ok, _ := engine.Verify("123456", 1)
//	    fmt.Println(ok)
//
//	    // 5. When the engine is no longer needed, destroy the material
//	    _ = secret.Scrub()
//	}
//
// An Engine may be shared across goroutines only as a read-only value; the
// setters require external synchronization against every other method.
//
// The Steam renderer follows Steam Guard behavior on a best-effort basis; the
// scheme is unstandardized. Engines using it produce no provisioning URI since
// the Key Uri Format has no representation for 5-character codes.
//
// # Error Handling
//
// Every exported operation fails fast on invalid input with a descriptive
// error that may be wrapped using errors.Join. Inspect errors with errors.Is
// against package level sentinels such as ErrInvalidSecret, ErrInvalidTime,
// ErrFailedToEncryptSecret etc. Note that a wrong passcode is not an error:
// Verify returns false with a nil error.
//
// # See Also
//
//   • RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   • RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package totp
