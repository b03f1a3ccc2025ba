package appjwt

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	testKeyOnce sync.Once
	testRSAKey  *rsa.PrivateKey
)

// testKey returns a process-wide RSA test key and its PKCS#1 PEM encoding.
// RSA keygen is expensive, so the key is generated once and shared.
func testKey(tb testing.TB) (*rsa.PrivateKey, []byte) {
	tb.Helper()
	testKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		testRSAKey = key
	})
	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(testRSAKey),
	})
	return testRSAKey, keyPEM
}

func fixedClock(sec int64) func() time.Time {
	return func() time.Time {
		return time.Unix(sec, 0)
	}
}

// decodeToken verifies the signature against the shared test key and returns
// header and claims. Claims validation is disabled so expired and
// zero-lifetime tokens still decode.
func decodeToken(tb testing.TB, token string) (map[string]any, jwt.MapClaims) {
	tb.Helper()
	key, _ := testKey(tb)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithoutClaimsValidation(),
	)
	parsed, err := parser.Parse(token, func(t *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	})
	if err != nil {
		tb.Fatalf("decode token: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		tb.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	return parsed.Header, claims
}

func decodeClaims(tb testing.TB, token string) jwt.MapClaims {
	tb.Helper()
	_, claims := decodeToken(tb, token)
	return claims
}

func claimInt64(tb testing.TB, claims jwt.MapClaims, name string) int64 {
	tb.Helper()
	v, ok := claims[name]
	if !ok {
		tb.Fatalf("claim %q missing", name)
	}
	f, ok := v.(float64)
	if !ok {
		tb.Fatalf("claim %q is %T, want number", name, v)
	}
	return int64(f)
}

// aclPaths extracts the acl.paths object from decoded claims.
func aclPaths(tb testing.TB, claims jwt.MapClaims) map[string]any {
	tb.Helper()
	aclClaim, ok := claims["acl"].(map[string]any)
	if !ok {
		tb.Fatalf("acl claim is %T, want object", claims["acl"])
	}
	paths, ok := aclClaim["paths"].(map[string]any)
	if !ok {
		tb.Fatalf("acl.paths is %T, want object", aclClaim["paths"])
	}
	return paths
}
