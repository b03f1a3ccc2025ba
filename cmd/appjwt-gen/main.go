// appjwt-gen mints a signed application token from the command line. It
// reads a PEM-encoded RSA private key from disk, assembles claims from
// flags, and prints the compact token to stdout.
//
// Path grants are repeatable: `--path '/a/**'` grants a path with no
// restrictions, `--path '/b/**=GET,POST'` restricts it to the listed
// methods. Custom claims are repeatable `--claim name=value` pairs; values
// parse as JSON when possible and fall back to plain strings.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MrEthical07/appjwt"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "appjwt-gen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		appID     string
		keyPath   string
		ttl       time.Duration
		jti       string
		subject   string
		notBefore string
		paths     []string
		claims    []string
	)

	flagSet := pflag.NewFlagSet("appjwt-gen", pflag.ContinueOnError)
	flagSet.StringVar(&appID, "app-id", "", "application id (required)")
	flagSet.StringVar(&keyPath, "key", "", "path to PEM-encoded RSA private key (required)")
	flagSet.DurationVar(&ttl, "ttl", appjwt.DefaultTTL, "token lifetime")
	flagSet.StringVar(&jti, "jti", "", "explicit token id (UUIDv4); generated when omitted")
	flagSet.StringVar(&subject, "subject", "", "sub claim")
	flagSet.StringVar(&notBefore, "not-before", "", "nbf claim, epoch seconds or RFC 3339")
	flagSet.StringArrayVar(&paths, "path", nil, "acl path grant, 'pattern' or 'pattern=GET,POST' (repeatable)")
	flagSet.StringArrayVar(&claims, "claim", nil, "custom claim, name=value with JSON values (repeatable)")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if appID == "" || keyPath == "" {
		return fmt.Errorf("--app-id and --key are required")
	}

	key, err := os.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("read key: %w", err)
	}

	opts := []appjwt.Option{appjwt.WithTTL(ttl)}
	if jti != "" {
		opts = append(opts, appjwt.WithJTI(jti))
	}
	if subject != "" {
		opts = append(opts, appjwt.WithSubject(subject))
	}
	if notBefore != "" {
		nbf, err := parseInstant(notBefore)
		if err != nil {
			return fmt.Errorf("parse --not-before: %w", err)
		}
		opts = append(opts, appjwt.WithNotBefore(nbf))
	}
	for _, spec := range paths {
		opts = append(opts, appjwt.WithPath(parsePath(spec)))
	}
	for _, spec := range claims {
		name, value, err := parseClaim(spec)
		if err != nil {
			return err
		}
		opts = append(opts, appjwt.WithClaim(name, value))
	}

	token, err := appjwt.Generate(appID, key, opts...)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

func parseInstant(value string) (time.Time, error) {
	if sec, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(sec, 0), nil
	}
	return time.Parse(time.RFC3339, value)
}

func parsePath(spec string) (string, appjwt.PathOptions) {
	pattern, methods, ok := strings.Cut(spec, "=")
	if !ok || methods == "" {
		return pattern, nil
	}
	return pattern, appjwt.Methods(strings.Split(methods, ",")...)
}

func parseClaim(spec string) (string, any, error) {
	name, raw, ok := strings.Cut(spec, "=")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("invalid --claim %q, want name=value", spec)
	}
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		// Not JSON: treat the raw text as a string claim.
		value = raw
	}
	return name, value, nil
}
