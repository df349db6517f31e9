// Package token issues and verifies the signed session tokens used by the
// API, and tracks explicitly revoked tokens until their natural expiry.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

var (
	// ErrTokenExpired means the token was well formed but is past its
	// expiry; the client should prompt a re-login.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed covers everything else: bad structure, wrong
	// signature, wrong signing method.
	ErrTokenMalformed = errors.New("token malformed")
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the token subject back into the user id it was issued for.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Issue signs a session token binding the user id and role. The role claim
// is informational only; the verifier middleware re-fetches the live role
// from the database on every request.
func Issue(userID int64, role domain.Role, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(userID, 10),
		},
	})

	return t.SignedString(secret)
}

// Parse verifies the signature and expiry of a token string. Expired tokens
// are reported as ErrTokenExpired even when the signature is valid; every
// other failure is ErrTokenMalformed.
func Parse(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	if !t.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
