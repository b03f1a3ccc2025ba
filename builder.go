package appjwt

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is the expiration window applied when SetTTL is never called.
const DefaultTTL = 15 * time.Minute

// Builder assembles the claim set for one token. Construct it with New or
// NewWithKey, configure claims through the chainable setters, then call
// Generate as many times as needed; iat/exp are re-read from the clock on
// every call while the jti stays fixed for the builder's lifetime.
//
// Builder is not safe for concurrent mutation.
type Builder struct {
	applicationID string
	privateKeyPEM []byte
	privateKey    *rsa.PrivateKey

	ttl       time.Duration
	jti       string
	notBefore *time.Time
	subject   *string
	acl       acl
	claims    []customClaim

	now func() time.Time
}

type customClaim struct {
	name  string
	value any
}

// New constructs a builder for the given application id and PEM-encoded RSA
// private key. The key is not parsed here; a malformed key surfaces from
// Generate as ErrSigningFailure.
func New(applicationID string, privateKey []byte) *Builder {
	return &Builder{
		applicationID: applicationID,
		privateKeyPEM: privateKey,
		ttl:           DefaultTTL,
		now:           time.Now,
	}
}

// NewWithKey constructs a builder around an already-parsed RSA private key.
func NewWithKey(applicationID string, key *rsa.PrivateKey) *Builder {
	b := New(applicationID, nil)
	b.privateKey = key
	return b
}

// SetTTL overwrites the expiration window used at generation time. Values
// are truncated to whole seconds. Zero and negative values are accepted and
// produce an already-expired token; bounding the lifetime is the caller's
// call.
func (b *Builder) SetTTL(ttl time.Duration) *Builder {
	b.ttl = ttl
	return b
}

// TTL returns the current expiration window.
func (b *Builder) TTL() time.Duration {
	return b.ttl
}

// SetJTI overwrites the token id. The value must be a canonical hyphenated
// UUIDv4; anything else returns ErrInvalidJTI and leaves the stored jti
// untouched.
func (b *Builder) SetJTI(jti string) error {
	if !isUUIDv4(jti) {
		return fmt.Errorf("%w: %q", ErrInvalidJTI, jti)
	}
	b.jti = jti
	return nil
}

// JTI returns the token id, generating and caching a fresh random UUIDv4 on
// first access. Once generated or set, the jti never changes for this
// builder.
func (b *Builder) JTI() string {
	if b.jti == "" {
		b.jti = uuid.NewString()
	}
	return b.jti
}

// SetNotBefore stores the instant before which the token is not valid. The
// nbf claim is emitted as whole epoch seconds.
func (b *Builder) SetNotBefore(t time.Time) *Builder {
	b.notBefore = &t
	return b
}

// NotBefore returns the configured not-before instant, or ErrNotConfigured
// if SetNotBefore was never called.
func (b *Builder) NotBefore() (time.Time, error) {
	if b.notBefore == nil {
		return time.Time{}, fmt.Errorf("not before: %w", ErrNotConfigured)
	}
	return *b.notBefore, nil
}

// SetSubject stores the sub claim value.
func (b *Builder) SetSubject(subject string) *Builder {
	b.subject = &subject
	return b
}

// Subject returns the configured subject, or ErrNotConfigured if SetSubject
// was never called.
func (b *Builder) Subject() (string, error) {
	if b.subject == nil {
		return "", fmt.Errorf("subject: %w", ErrNotConfigured)
	}
	return *b.subject, nil
}

// AddPath grants the token access to one path pattern, overwriting any
// previous options for the same pattern. A nil opts grants the path with no
// restrictions and still serializes as an empty object.
func (b *Builder) AddPath(path string, opts PathOptions) *Builder {
	b.acl.add(path, opts)
	return b
}

// SetPaths replaces the whole path-grant collection atomically. Entries mix
// bare paths and path+options grants:
//
//	b.SetPaths(appjwt.Path("/a/**"), appjwt.PathWith("/b/**", appjwt.Methods("GET")))
func (b *Builder) SetPaths(entries ...PathEntry) *Builder {
	b.acl.reset()
	for _, entry := range entries {
		b.acl.add(entry.Path, entry.Options)
	}
	return b
}

// Paths returns the current path grants in insertion order. An empty slice
// means no acl claim will be emitted.
func (b *Builder) Paths() []PathEntry {
	return b.acl.entries()
}

// AddClaim inserts an arbitrary claim merged into the token after the
// standard claims, overwriting any same-named claim, including standard ones
// like application_id. Repeated adds for one name are last-write-wins. No
// validation is performed.
func (b *Builder) AddClaim(name string, value any) *Builder {
	for i := range b.claims {
		if b.claims[i].name == name {
			b.claims[i].value = value
			return b
		}
	}
	b.claims = append(b.claims, customClaim{name: name, value: value})
	return b
}

// SetClock replaces the wall-clock source used for iat/exp. Tests inject a
// fixed clock here; production code leaves the default time.Now.
func (b *Builder) SetClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// isUUIDv4 accepts only the canonical 36-character hyphenated form with
// version 4 and RFC 4122 variant bits. uuid.Parse alone also takes urn:
// prefixes, braces, and bare hex, which are not valid jti values here.
func isUUIDv4(s string) bool {
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}
