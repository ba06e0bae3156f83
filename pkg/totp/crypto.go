package totp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"

	"github.com/dmitrymomot/otpkit/pkg/codec"
)

// EncryptionKeySize is the key length required for AES-256.
const EncryptionKeySize = 32

// EncryptSecret encrypts the secret's raw material with AES-256-GCM for
// persistence by the caller. The result is a Base64 string of
// nonce||ciphertext||tag. The secret itself is left intact.
func EncryptSecret(secret *Secret, key []byte) (string, error) {
	if len(key) != EncryptionKeySize {
		return "", errors.Join(ErrFailedToEncryptSecret, ErrInvalidEncryptionKeyLength)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	ciphertext := aesGCM.Seal(nonce, nonce, secret.raw, nil)
	return codec.EncodeBase64(ciphertext), nil
}

// DecryptSecret reverses EncryptSecret, reconstructing the secret from a
// Base64 ciphertext produced with the same key.
func DecryptSecret(encoded string, key []byte) (*Secret, error) {
	if len(key) != EncryptionKeySize {
		return nil, errors.Join(ErrFailedToDecryptSecret, ErrInvalidEncryptionKeyLength)
	}

	ciphertext, err := codec.DecodeBase64(encoded)
	if err != nil {
		return nil, errors.Join(ErrFailedToDecryptSecret, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrFailedToDecryptSecret, err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrFailedToDecryptSecret, err)
	}

	if len(ciphertext) < aesGCM.NonceSize() {
		return nil, errors.Join(ErrFailedToDecryptSecret, ErrCiphertextTooShort)
	}

	nonce, sealed := ciphertext[:aesGCM.NonceSize()], ciphertext[aesGCM.NonceSize():]
	raw, err := aesGCM.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, errors.Join(ErrFailedToDecryptSecret, err)
	}

	return NewSecret(raw)
}

// GenerateEncryptionKey creates a random 32-byte key suitable for AES-256.
func GenerateEncryptionKey() ([]byte, error) {
	key := make([]byte, EncryptionKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrFailedToGenerateEncryptionKey, err)
	}
	return key, nil
}

// GenerateEncodedEncryptionKey creates a random AES-256 key in the Base64 form
// the TOTP_ENCRYPTION_KEY environment variable expects.
func GenerateEncodedEncryptionKey() (string, error) {
	key, err := GenerateEncryptionKey()
	if err != nil {
		return "", err
	}
	return codec.EncodeBase64(key), nil
}

// LoadEncryptionKey reads and decodes the Base64 key from the loaded
// configuration. See LoadConfig.
func LoadEncryptionKey() ([]byte, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadEncryptionKey, err)
	}

	key, err := codec.DecodeBase64(cfg.EncryptionKey)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadEncryptionKey, err)
	}
	if len(key) != EncryptionKeySize {
		return nil, errors.Join(ErrFailedToLoadEncryptionKey, ErrInvalidEncryptionKeyLength)
	}
	return key, nil
}
