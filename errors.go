package appjwt

import "errors"

var (
	// ErrInvalidJTI is returned by SetJTI (and the WithJTI option) when the
	// supplied string is not a canonical hyphenated UUIDv4. The builder's
	// jti state is left untouched.
	ErrInvalidJTI = errors.New("jti is not a valid uuidv4")
	// ErrNotConfigured is returned by NotBefore and Subject when the claim
	// was never set. Absence of these claims is a normal state, not a
	// generation failure.
	ErrNotConfigured = errors.New("claim not configured")
	// ErrSigningFailure is returned by Generate when the private key cannot
	// be parsed or the RSA-SHA256 signing operation fails. Retrying with the
	// same key cannot succeed.
	ErrSigningFailure = errors.New("token signing failed")
)
