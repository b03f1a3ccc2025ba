package appjwt

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generate assembles the claim set and returns the compact RS256-signed
// token. The clock is read fresh on every call, so repeated calls on one
// builder yield the same jti but advancing iat/exp. Claim precedence:
// standard claims first (iat, exp, jti, application_id, acl, nbf, sub), then
// custom claims in insertion order, each overwriting any same-named claim.
func (b *Builder) Generate() (string, error) {
	key, err := b.signingKey()
	if err != nil {
		return "", err
	}

	now := b.now().Unix()
	claims := jwt.MapClaims{
		"iat":            now,
		"exp":            now + int64(b.ttl/time.Second),
		"jti":            b.JTI(),
		"application_id": b.applicationID,
	}
	if b.acl.len() > 0 {
		claims["acl"] = b.acl
	}
	if b.notBefore != nil {
		claims["nbf"] = b.notBefore.Unix()
	}
	if b.subject != nil {
		claims["sub"] = *b.subject
	}
	for _, claim := range b.claims {
		claims[claim.name] = claim.value
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigningFailure, err)
	}
	return signed, nil
}

func (b *Builder) signingKey() (*rsa.PrivateKey, error) {
	if b.privateKey != nil {
		return b.privateKey, nil
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(b.privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSigningFailure, err)
	}
	return key, nil
}
