package totp

import "errors"

var (
	ErrInvalidSecret    = errors.New("invalid secret: must be at least 16 bytes")
	ErrInvalidAlgorithm = errors.New("invalid hash algorithm")
	ErrInvalidPeriod    = errors.New("invalid period: must be at least 1 second")
	ErrInvalidDigits    = errors.New("invalid digits: must be at least 6")
	ErrInvalidWindow    = errors.New("invalid verification window: must not be negative")
	ErrInvalidTime      = errors.New("invalid time: precedes the reference time")

	ErrFailedToGenerateSecret = errors.New("failed to generate secret")
	ErrFailedToScrubSecret    = errors.New("failed to scrub secret")
	ErrSecretScrubbed         = errors.New("secret has already been scrubbed")

	ErrFailedToEncryptSecret         = errors.New("failed to encrypt secret")
	ErrFailedToDecryptSecret         = errors.New("failed to decrypt secret")
	ErrCiphertextTooShort            = errors.New("ciphertext too short")
	ErrFailedToGenerateEncryptionKey = errors.New("failed to generate encryption key")
	ErrFailedToLoadEncryptionKey     = errors.New("failed to load encryption key")
	ErrInvalidEncryptionKeyLength    = errors.New("invalid encryption key length")
	ErrEncryptionKeyNotSet           = errors.New("encryption key not set")

	ErrMissingAccountName = errors.New("missing account name")
	ErrMissingIssuer      = errors.New("missing issuer")

	ErrInvalidRecoveryCodeCount     = errors.New("invalid recovery code count, must be greater than 0")
	ErrFailedToGenerateRecoveryCode = errors.New("failed to generate recovery code")
)
