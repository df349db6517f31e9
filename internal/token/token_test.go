package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

var testSecret = []byte("test-secret")

func TestIssueAndParse(t *testing.T) {
	tokenString, err := Issue(42, domain.RoleEmployer, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := Parse(tokenString, testSecret)
	require.NoError(t, err)

	assert.Equal(t, string(domain.RoleEmployer), claims.Role)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseExpired(t *testing.T) {
	tokenString, err := Issue(7, domain.RoleCandidate, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(tokenString, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	tokenString, err := Issue(7, domain.RoleCandidate, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = Parse(tokenString, []byte("another-secret"))
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseGarbage(t *testing.T) {
	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := Parse(tokenString, testSecret)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", tokenString)
	}
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Role: string(domain.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Subject:   "1",
		},
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Parse(tokenString, testSecret)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestClaimsUserIDRejectsNonNumericSubject(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "abc"}}
	_, err := claims.UserID()
	assert.Error(t, err)
}
