package totp

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg  Config
	once sync.Once
)

// Config carries the process-wide settings read from the environment.
type Config struct {
	EncryptionKey string `env:"TOTP_ENCRYPTION_KEY,required"` // Base64-encoded AES-256 key for secret persistence
	Issuer        string `env:"TOTP_ISSUER"`                  // Default issuer for provisioning URIs
	Digits        int    `env:"TOTP_DIGITS" envDefault:"6"`   // Default passcode width
	Period        int64  `env:"TOTP_PERIOD" envDefault:"30"`  // Default time step in seconds
}

// LoadConfig parses the environment once per process and returns the cached
// result on subsequent calls. Values are validated with the same rules the
// engine applies, so a process with a broken environment fails at startup
// rather than on first use.
func LoadConfig() (Config, error) {
	configLoadFunc := func() (Config, error) {
		var cfg Config
		if err := env.Parse(&cfg); err != nil {
			return Config{}, err
		}
		if cfg.EncryptionKey == "" {
			return Config{}, ErrEncryptionKeyNotSet
		}
		if cfg.Digits < MinDigits {
			return Config{}, fmt.Errorf("%w: got %d", ErrInvalidDigits, cfg.Digits)
		}
		if cfg.Period < 1 {
			return Config{}, fmt.Errorf("%w: got %d", ErrInvalidPeriod, cfg.Period)
		}
		return cfg, nil
	}

	var err error
	once.Do(func() {
		cfg, err = configLoadFunc()
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
