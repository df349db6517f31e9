package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := GenerateRandomOTP()
		require.Len(t, otp, 6)
		for _, c := range otp {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(16)
	assert.Len(t, password, 16)
	assert.NotEqual(t, password, GenerateRandomPassword(16))
}

func TestGenerateEmailFromFullName(t *testing.T) {
	email := GenerateEmailFromFullName("Grace Holden", "example.com")

	assert.True(t, strings.HasSuffix(email, "@example.com"))
	assert.True(t, strings.HasPrefix(email, "gholden"))
	assert.Equal(t, strings.ToLower(email), email)
}

func TestGenerateRandomCandidate(t *testing.T) {
	user, err := GenerateRandomCandidate("secret-password", "example.com")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleCandidate, user.Role)
	assert.NotEmpty(t, user.FullName)
	assert.Contains(t, user.Email, "@example.com")
	assert.NotEmpty(t, user.Skills)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))
}
