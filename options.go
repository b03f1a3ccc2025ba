package appjwt

import (
	"crypto/rsa"
	"time"
)

// Option configures a Builder inside the one-shot Generate function. Options
// apply in order; a failing option (currently only WithJTI) aborts
// generation.
type Option func(*Builder) error

// WithTTL sets the expiration window.
func WithTTL(ttl time.Duration) Option {
	return func(b *Builder) error {
		b.SetTTL(ttl)
		return nil
	}
}

// WithJTI sets the token id. Fails with ErrInvalidJTI for anything but a
// canonical UUIDv4.
func WithJTI(jti string) Option {
	return func(b *Builder) error {
		return b.SetJTI(jti)
	}
}

// WithNotBefore sets the nbf claim.
func WithNotBefore(t time.Time) Option {
	return func(b *Builder) error {
		b.SetNotBefore(t)
		return nil
	}
}

// WithNotBeforeUnix sets the nbf claim from epoch seconds. Equivalent to
// WithNotBefore(time.Unix(sec, 0)).
func WithNotBeforeUnix(sec int64) Option {
	return func(b *Builder) error {
		b.SetNotBefore(time.Unix(sec, 0))
		return nil
	}
}

// WithSubject sets the sub claim.
func WithSubject(subject string) Option {
	return func(b *Builder) error {
		b.SetSubject(subject)
		return nil
	}
}

// WithPaths replaces the whole path-grant collection.
func WithPaths(entries ...PathEntry) Option {
	return func(b *Builder) error {
		b.SetPaths(entries...)
		return nil
	}
}

// WithPath grants a single path pattern.
func WithPath(path string, opts PathOptions) Option {
	return func(b *Builder) error {
		b.AddPath(path, opts)
		return nil
	}
}

// WithClaim adds an arbitrary custom claim.
func WithClaim(name string, value any) Option {
	return func(b *Builder) error {
		b.AddClaim(name, value)
		return nil
	}
}

// WithClock replaces the wall-clock source for iat/exp.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) error {
		b.SetClock(now)
		return nil
	}
}

// Generate is the one-shot factory: it builds a token from the given
// application id, PEM-encoded RSA private key, and options, producing output
// identical to constructing a Builder, applying the equivalent setter
// sequence, and calling Generate on it.
func Generate(applicationID string, privateKey []byte, opts ...Option) (string, error) {
	return generate(New(applicationID, privateKey), opts)
}

// GenerateWithKey is Generate for an already-parsed RSA private key.
func GenerateWithKey(applicationID string, key *rsa.PrivateKey, opts ...Option) (string, error) {
	return generate(NewWithKey(applicationID, key), opts)
}

func generate(b *Builder, opts []Option) (string, error) {
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return "", err
		}
	}
	return b.Generate()
}
