package service

import (
	"errors"
	"time"
)

// Decode failure kinds. The HTTP layer collapses all of them into one 401,
// but internal callers distinguish them with errors.Is.
var (
	// ErrTokenMalformed means the string could not be parsed as a token at all.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenExpired means the token parsed and verified but its expiry has
	// elapsed. The boundary is inclusive: now >= exp means expired.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid covers signature mismatch (tampering or a rotated key)
	// and any other verification failure.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims is the payload embedded in an issued token.
type Claims struct {
	Subject   string    // The username the token was issued for.
	ExpiresAt time.Time // Absolute expiry instant, second granularity.
}

// TokenCodec encodes claims into signed, time-bounded bearer tokens and
// decodes them back. Tokens are the sole session state; there is no
// server-side record, so rotating the signing key invalidates all of them.
type TokenCodec interface {
	// Issue builds a token for the subject with expiry now+ttl.
	Issue(subject string, ttl time.Duration) (string, error)

	// Decode validates a token and returns its claims, failing with one of
	// the sentinel errors above.
	Decode(token string) (*Claims, error)

	// TokenTTL returns the configured default time-to-live.
	TokenTTL() time.Duration
}
