package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocationTTL(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		expiresAt time.Time
		want      time.Duration
	}{
		{"future expiry keeps the remaining lifetime", now.Add(2 * time.Hour), 2 * time.Hour},
		{"expiry right now needs no entry", now, 0},
		{"past expiry needs no entry", now.Add(-time.Minute), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, revocationTTL(tt.expiresAt, now))
		})
	}
}

func TestRevocationKey(t *testing.T) {
	tokenString := "eyJhbGciOiJIUzI1NiJ9.payload.signature"

	key := revocationKey(tokenString)

	// deterministic, distinct per token, and never contains the credential
	assert.Equal(t, key, revocationKey(tokenString))
	assert.NotEqual(t, key, revocationKey(tokenString+"x"))
	assert.True(t, strings.HasPrefix(key, "revoked_token_"))
	assert.NotContains(t, key, tokenString)
}
