// Package appjwt issues RS256-signed JWTs for authenticating calls against
// application APIs.
//
// A [Builder] holds the claim state for exactly one target token: the
// application id and RSA private key are fixed at construction, everything
// else (TTL, jti, not-before, subject, ACL path grants, arbitrary custom
// claims) is configured through chainable setters and materialized by
// [Builder.Generate]. The one-shot [Generate] function covers the common
// "configuration in, token string out" case.
//
// # Architecture boundaries
//
// appjwt is a pure claims-assembly core. Key material arrives as raw PEM
// bytes (or an already-parsed *rsa.PrivateKey) and the current time comes
// from an injectable clock; reading keys from files or secret stores,
// transporting tokens, and verifying them are the caller's problem.
//
// # What this package must NOT do
//
//   - Perform network or disk I/O. Generate is CPU-bound signing plus a
//     clock read, nothing else.
//   - Keep state beyond the builder instance. There is no process-wide
//     registry of issued tokens.
//   - Verify or parse tokens. The signing key never needs its public half
//     here.
//
// # Concurrency contract
//
// A Builder is mutable and unsynchronized. Use one builder per goroutine or
// guard it externally; distinct builders are fully independent.
package appjwt
