// Command line helper for the totp package: generates secrets and encryption
// keys, prints and verifies passcodes, renders provisioning URIs and QR codes,
// and batch-prints codes from a YAML account book.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/otpkit/pkg/qrcode"
	"github.com/dmitrymomot/otpkit/pkg/totp"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "secret":
		err = runSecret()
	case "key":
		err = runKey()
	case "code":
		err = runCode(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	case "uri":
		err = runURI(os.Args[2:])
	case "book":
		err = runBook(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: totp <command> [flags]

Commands:
  secret   generate a new shared secret (Base32)
  key      generate an encryption key for the TOTP_ENCRYPTION_KEY env var
  code     print the current passcode for a secret
  verify   check a passcode against a secret
  uri      print a provisioning URI, optionally writing a QR code PNG
  book     print current passcodes for every entry in a YAML account book`)
}

// engineFlags is the shared flag surface of code, verify, and uri.
type engineFlags struct {
	secret    string
	algorithm string
	digits    int
	period    int64
	steam     bool
}

func (f *engineFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.secret, "secret", "", "Base32-encoded shared secret (required)")
	fs.StringVar(&f.algorithm, "algorithm", "sha1", "HMAC hash: sha1, sha256 or sha512")
	fs.IntVar(&f.digits, "digits", totp.DefaultDigits, "passcode width")
	fs.Int64Var(&f.period, "period", totp.DefaultPeriod, "time step in seconds")
	fs.BoolVar(&f.steam, "steam", false, "render Steam Guard style 5-character codes")
}

func (f *engineFlags) engine() (*totp.Engine, error) {
	secret, err := totp.SecretFromBase32(f.secret)
	if err != nil {
		return nil, err
	}
	alg, err := totp.ParseAlgorithm(f.algorithm)
	if err != nil {
		return nil, err
	}

	opts := []totp.Option{
		totp.WithAlgorithm(alg),
		totp.WithPeriod(f.period),
	}
	if f.steam {
		opts = append(opts, totp.WithRenderer(totp.SteamRenderer()))
	} else {
		opts = append(opts, totp.WithDigits(f.digits))
	}
	return totp.NewEngine(secret, opts...)
}

func runSecret() error {
	secret, err := totp.GenerateSecret()
	if err != nil {
		return err
	}
	fmt.Println(secret.Base32())
	return nil
}

func runKey() error {
	encodedKey, err := totp.GenerateEncodedEncryptionKey()
	if err != nil {
		return err
	}
	fmt.Printf("Generated encryption key (for the TOTP_ENCRYPTION_KEY env var):\n———\n%s\n———\n", encodedKey)
	return nil
}

func runCode(args []string) error {
	fs := flag.NewFlagSet("code", flag.ExitOnError)
	var ef engineFlags
	ef.register(fs)
	_ = fs.Parse(args)

	engine, err := ef.engine()
	if err != nil {
		return err
	}
	code, err := engine.Password()
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	fmt.Printf("%s (valid for %ds)\n", code, engine.Period()-now%engine.Period())
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	var ef engineFlags
	ef.register(fs)
	code := fs.String("code", "", "passcode to check (required)")
	window := fs.Int("window", 1, "accepted past time steps")
	_ = fs.Parse(args)

	engine, err := ef.engine()
	if err != nil {
		return err
	}
	ok, err := engine.Verify(*code, *window)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("INVALID")
		os.Exit(1)
	}
	fmt.Println("OK")
	return nil
}

func runURI(args []string) error {
	fs := flag.NewFlagSet("uri", flag.ExitOnError)
	var ef engineFlags
	ef.register(fs)
	issuer := fs.String("issuer", "", "service name (required)")
	account := fs.String("account", "", "account label, e.g. an email (required)")
	qrOut := fs.String("qr", "", "also write a QR code PNG to this path")
	_ = fs.Parse(args)

	engine, err := ef.engine()
	if err != nil {
		return err
	}
	uri, err := engine.URI(*issuer, *account)
	if err != nil {
		return err
	}
	fmt.Println(uri)

	if *qrOut != "" {
		png, err := qrcode.Provisioning(uri, 0)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*qrOut, png, 0o600); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "QR code written to %s\n", *qrOut)
	}
	return nil
}

// accountBook is the YAML schema of the book command.
type accountBook struct {
	Accounts []accountEntry `yaml:"accounts"`
}

type accountEntry struct {
	Issuer    string `yaml:"issuer"`
	Account   string `yaml:"account"`
	Secret    string `yaml:"secret"`
	Algorithm string `yaml:"algorithm,omitempty"`
	Digits    int    `yaml:"digits,omitempty"`
	Period    int64  `yaml:"period,omitempty"`
	Steam     bool   `yaml:"steam,omitempty"`
}

func runBook(args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	file := fs.String("file", "accounts.yaml", "account book path")
	_ = fs.Parse(args)

	raw, err := os.ReadFile(*file)
	if err != nil {
		return err
	}

	var book accountBook
	if err := yaml.Unmarshal(raw, &book); err != nil {
		return fmt.Errorf("parse %s: %w", *file, err)
	}

	for _, entry := range book.Accounts {
		ef := engineFlags{
			secret:    entry.Secret,
			algorithm: entry.Algorithm,
			digits:    entry.Digits,
			period:    entry.Period,
			steam:     entry.Steam,
		}
		if ef.algorithm == "" {
			ef.algorithm = "sha1"
		}
		if ef.digits == 0 {
			ef.digits = totp.DefaultDigits
		}
		if ef.period == 0 {
			ef.period = totp.DefaultPeriod
		}

		engine, err := ef.engine()
		if err != nil {
			log.Printf("%s/%s: %v", entry.Issuer, entry.Account, err)
			continue
		}
		code, err := engine.Password()
		if err != nil {
			log.Printf("%s/%s: %v", entry.Issuer, entry.Account, err)
			continue
		}
		fmt.Printf("%-20s %-30s %s\n", entry.Issuer, entry.Account, code)
	}
	return nil
}
