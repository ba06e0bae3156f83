package totp

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// base32SecretRegex matches Base32 secret text as authenticator apps accept
// it: uppercase dictionary characters with optional trailing padding.
var base32SecretRegex = regexp.MustCompile("^[A-Z2-7]+=*$")

// URIParams describes an otpauth://totp provisioning URI for authenticator
// apps, following the Key Uri Format:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
type URIParams struct {
	Secret      string    // Base32-encoded secret (required)
	AccountName string    // User identifier like email (required)
	Issuer      string    // Service name displayed in authenticator apps (required)
	Algorithm   Algorithm // Optional, defaults to SHA1
	Digits      int       // Optional, defaults to 6
	Period      int64     // Optional, defaults to 30 seconds
}

// Validate ensures the required fields are present and well-formed.
func (p URIParams) Validate() error {
	if p.Secret == "" || !base32SecretRegex.MatchString(p.Secret) {
		return fmt.Errorf("%w: secret is not valid Base32 text", ErrInvalidSecret)
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	if p.Algorithm != "" && !p.Algorithm.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAlgorithm, string(p.Algorithm))
	}
	if p.Digits != 0 && p.Digits < MinDigits {
		return fmt.Errorf("%w: got %d", ErrInvalidDigits, p.Digits)
	}
	if p.Period < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPeriod, p.Period)
	}
	return nil
}

// withDefaults returns a copy with RFC 6238 standard values applied to
// zero-valued optional fields.
func (p URIParams) withDefaults() URIParams {
	if p.Algorithm == "" {
		p.Algorithm = SHA1
	}
	if p.Digits == 0 {
		p.Digits = DefaultDigits
	}
	if p.Period == 0 {
		p.Period = DefaultPeriod
	}
	return p
}

// BuildURI creates a properly encoded otpauth://totp URI from the params.
// Secret padding is stripped since some authenticator apps reject it.
func BuildURI(params URIParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	params = params.withDefaults()

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", strings.TrimRight(params.Secret, "="))
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", params.Algorithm.String())
	query.Set("digits", fmt.Sprintf("%d", params.Digits))
	query.Set("period", fmt.Sprintf("%d", params.Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}

// URI builds a provisioning URI for this engine's secret and configuration.
func (e *Engine) URI(issuer, accountName string) (string, error) {
	return BuildURI(URIParams{
		Secret:      e.secret.Base32(),
		AccountName: accountName,
		Issuer:      issuer,
		Algorithm:   e.alg,
		Digits:      e.Digits(),
		Period:      e.period,
	})
}
