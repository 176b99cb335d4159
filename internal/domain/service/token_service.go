package service

import "errors"

// ErrInvalidToken is returned by Verify for any token that cannot be accepted:
// bad signature, malformed structure, wrong algorithm, or past expiry. Callers
// must not learn which case occurred.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService defines the interface for issuing and verifying session tokens.
// Tokens are self-contained credentials; there is no revocation list, so a
// token stays valid until its stamped expiry.
type TokenService interface {
	// Issue creates a signed token asserting the given subject email with an
	// expiry of issuance time plus the configured TTL.
	Issue(subjectEmail string) (string, error)

	// Verify checks the token's signature, structure and expiry, returning the
	// subject email on success and ErrInvalidToken otherwise.
	Verify(token string) (string, error)
}
