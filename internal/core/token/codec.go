package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/micropost/content-api/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Claims binds a user id to an expiry instant.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Codec issues and verifies signed, time-limited identity tokens (HS256).
// Tokens are self-contained: validity is determined purely by signature and
// expiry at verification time, never by server-side state. The trade-off is
// that issued tokens cannot be revoked before they expire.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec signing with secret. If ttl <= 0, defaultTTL is used.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue produces an opaque token asserting userID until now+ttl.
func (c *Codec) Issue(userID int64) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify decodes tokenStr, checks signature integrity and expiry, and returns
// the asserted user id.
func (c *Codec) Verify(tokenStr string) (int64, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.ErrTokenExpired
		}
		return 0, domain.ErrTokenMalformed
	}
	if !tkn.Valid {
		return 0, domain.ErrTokenMalformed
	}

	return claims.UserID, nil
}
