package totp

import (
	"crypto/hmac"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"time"
)

const (
	// DefaultPeriod is the RFC 6238 standard time step in seconds.
	DefaultPeriod int64 = 30
	// DefaultReferenceTime is the conventional T0 of zero Unix seconds.
	DefaultReferenceTime int64 = 0
)

// Engine computes and verifies time-based one-time passwords over a single
// shared secret. It derives a counter from wall-clock time, computes an HMAC
// over the counter's 8-byte big-endian encoding, and renders the HMAC into a
// passcode.
//
// An Engine is safe for concurrent use only as a read-only value: the setters
// must not race with any other method on the same instance.
type Engine struct {
	secret   *Secret
	alg      Algorithm
	period   int64
	refTime  int64
	renderer Renderer
}

// Option configures engine construction.
type Option func(*Engine) error

// WithAlgorithm selects the HMAC hash function.
func WithAlgorithm(alg Algorithm) Option {
	return func(e *Engine) error {
		if !alg.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidAlgorithm, string(alg))
		}
		e.alg = alg
		return nil
	}
}

// WithPeriod sets the time step in seconds.
func WithPeriod(seconds int64) Option {
	return func(e *Engine) error {
		if seconds < 1 {
			return fmt.Errorf("%w: got %d", ErrInvalidPeriod, seconds)
		}
		e.period = seconds
		return nil
	}
}

// WithReferenceTime sets T0, the Unix timestamp at which the counter is zero.
func WithReferenceTime(unix int64) Option {
	return func(e *Engine) error {
		e.refTime = unix
		return nil
	}
}

// WithDigits installs a fixed-width decimal renderer of the given width.
func WithDigits(digits int) Option {
	return func(e *Engine) error {
		r, err := DigitsRenderer(digits)
		if err != nil {
			return err
		}
		e.renderer = r
		return nil
	}
}

// WithRenderer installs a renderer directly, e.g. SteamRenderer().
func WithRenderer(r Renderer) Option {
	return func(e *Engine) error {
		e.renderer = r
		return nil
	}
}

// NewEngine creates an engine over the given secret. Defaults follow RFC 6238:
// SHA-1, 30-second period, reference time zero, 6-digit decimal passcodes.
// The engine holds the secret directly; the caller remains responsible for
// scrubbing it when the engine is no longer needed.
func NewEngine(secret *Secret, opts ...Option) (*Engine, error) {
	if secret == nil || secret.Len() < MinSecretSize {
		return nil, ErrInvalidSecret
	}

	e := &Engine{
		secret:  secret,
		alg:     SHA1,
		period:  DefaultPeriod,
		refTime: DefaultReferenceTime,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Secret returns the engine's secret.
func (e *Engine) Secret() *Secret { return e.secret }

// Algorithm returns the configured HMAC hash function.
func (e *Engine) Algorithm() Algorithm { return e.alg }

// Period returns the time step in seconds.
func (e *Engine) Period() int64 { return e.period }

// ReferenceTime returns T0 as Unix seconds.
func (e *Engine) ReferenceTime() int64 { return e.refTime }

// Renderer returns the configured passcode renderer.
func (e *Engine) Renderer() Renderer { return e.renderer }

// Digits returns the passcode width the engine produces.
func (e *Engine) Digits() int { return e.renderer.Digits() }

// SetSecret swaps the secret. The previous secret is left unscrubbed; the
// engine state is untouched on rejection.
func (e *Engine) SetSecret(secret *Secret) error {
	if secret == nil || secret.Len() < MinSecretSize {
		return ErrInvalidSecret
	}
	e.secret = secret
	return nil
}

// SetAlgorithm swaps the HMAC hash function.
func (e *Engine) SetAlgorithm(alg Algorithm) error {
	if !alg.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAlgorithm, string(alg))
	}
	e.alg = alg
	return nil
}

// SetPeriod swaps the time step.
func (e *Engine) SetPeriod(seconds int64) error {
	if seconds < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPeriod, seconds)
	}
	e.period = seconds
	return nil
}

// SetReferenceTime swaps T0.
func (e *Engine) SetReferenceTime(unix int64) {
	e.refTime = unix
}

// SetRenderer swaps the passcode renderer.
func (e *Engine) SetRenderer(r Renderer) {
	e.renderer = r
}

// CounterAt returns the number of whole time steps between the reference time
// and t. It fails with ErrInvalidTime when t precedes the reference time.
func (e *Engine) CounterAt(t time.Time) (uint64, error) {
	unix := t.Unix()
	if unix < e.refTime {
		return 0, fmt.Errorf("%w: %d is before reference time %d", ErrInvalidTime, unix, e.refTime)
	}
	return uint64(unix-e.refTime) / uint64(e.period), nil
}

// Counter returns the counter for the current wall-clock time.
func (e *Engine) Counter() (uint64, error) {
	return e.CounterAt(time.Now())
}

// counterBytes encodes a counter as the 8-byte big-endian C value of RFC 4226.
func counterBytes(counter uint64) [8]byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], counter)
	return buf
}

// HMACAt computes the HMAC of the counter for time t, keyed by the raw secret.
func (e *Engine) HMACAt(t time.Time) ([]byte, error) {
	counter, err := e.CounterAt(t)
	if err != nil {
		return nil, err
	}
	return e.hmacOf(counter), nil
}

// HMAC computes the HMAC for the current wall-clock time.
func (e *Engine) HMAC() ([]byte, error) {
	return e.HMACAt(time.Now())
}

func (e *Engine) hmacOf(counter uint64) []byte {
	buf := counterBytes(counter)
	mac := hmac.New(e.alg.New(), e.secret.raw)
	mac.Write(buf[:])
	return mac.Sum(nil)
}

// PasswordAt renders the passcode for time t.
func (e *Engine) PasswordAt(t time.Time) (string, error) {
	mac, err := e.HMACAt(t)
	if err != nil {
		return "", err
	}
	return e.renderer.Render(mac), nil
}

// Password renders the passcode for the current wall-clock time.
func (e *Engine) Password() (string, error) {
	return e.PasswordAt(time.Now())
}

// VerifyAt reports whether candidate matches the passcode of the time step
// containing t or of any of the preceding window steps. Future steps are never
// accepted. Comparison is constant-time. A false result with a nil error is
// the normal outcome for a wrong passcode; errors are reserved for invalid
// window values and times before the reference time.
func (e *Engine) VerifyAt(candidate string, t time.Time, window int) (bool, error) {
	if window < 0 {
		return false, fmt.Errorf("%w: got %d", ErrInvalidWindow, window)
	}

	counter, err := e.CounterAt(t)
	if err != nil {
		return false, err
	}

	ok := false
	for k := 0; k <= window; k++ {
		// Steps before the reference time have no counter to check.
		if uint64(k) > counter {
			break
		}
		expected := e.renderer.Render(e.hmacOf(counter - uint64(k)))
		if subtle.ConstantTimeCompare([]byte(expected), []byte(candidate)) == 1 {
			ok = true
		}
	}
	return ok, nil
}

// Verify checks candidate against the current wall-clock time.
func (e *Engine) Verify(candidate string, window int) (bool, error) {
	return e.VerifyAt(candidate, time.Now(), window)
}
