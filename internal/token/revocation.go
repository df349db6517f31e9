package token

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationRegistry marks logged-out tokens unusable until their natural
// expiry. Entries live in redis with a TTL equal to the token's remaining
// lifetime, so the set never grows beyond the tokens issued in the last
// expiration window and survives across server instances.
type RevocationRegistry struct {
	client *redis.Client
}

func NewRevocationRegistry(client *redis.Client) *RevocationRegistry {
	return &RevocationRegistry{client: client}
}

// revocationKey hashes the raw token so redis never stores a usable
// credential.
func revocationKey(tokenString string) string {
	return fmt.Sprintf("revoked_token_%x", sha256.Sum256([]byte(tokenString)))
}

// revocationTTL returns how long a revocation entry must be kept. Tokens
// already past expiry need no entry at all.
func revocationTTL(expiresAt, now time.Time) time.Duration {
	ttl := expiresAt.Sub(now)
	if ttl < 0 {
		return 0
	}
	return ttl
}

func (r *RevocationRegistry) Revoke(ctx context.Context, tokenString string, expiresAt time.Time) error {
	ttl := revocationTTL(expiresAt, time.Now())
	if ttl == 0 {
		return nil
	}

	return r.client.Set(ctx, revocationKey(tokenString), 1, ttl).Err()
}

func (r *RevocationRegistry) IsRevoked(ctx context.Context, tokenString string) (bool, error) {
	n, err := r.client.Exists(ctx, revocationKey(tokenString)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
