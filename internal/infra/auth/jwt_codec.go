package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stepwise/config"
	"stepwise/internal/domain/service"
	"stepwise/internal/errors"
)

// jwtCodec implements the TokenCodec interface with HS256-signed JWTs.
// The token itself is the session state; nothing is persisted server-side.
type jwtCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTCodec is the constructor for jwtCodec.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtCodec{
		secret: []byte(cfg.Auth.Secret),
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Issue builds a compact, URL-safe token for the subject, expiring at
// now+ttl. A non-positive ttl produces an already-expired token; Decode
// reports it as expired, which the tests rely on.
func (c *jwtCodec) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Decode validates a token string and maps jwt/v5's failure modes onto the
// domain sentinels. Expiry is second-granularity and inclusive: now >= exp
// means expired (jwt/v5 requires now to be strictly before exp).
func (c *jwtCodec) Decode(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Reject any signing method other than HMAC before verifying.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return c.secret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, errors.Wrap(service.ErrTokenMalformed, err.Error())
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		default:
			return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
		}
	}

	registered, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	return &service.Claims{
		Subject:   registered.Subject,
		ExpiresAt: registered.ExpiresAt.Time,
	}, nil
}

// TokenTTL returns the configured default time-to-live for issued tokens.
func (c *jwtCodec) TokenTTL() time.Duration {
	return c.ttl
}
