package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// RevocationStore records revoked token identifiers in Redis. Entries expire
// on their own; revoking the same token twice is a no-op.
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore wraps the shared Redis client.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke stores an empty marker under the token ID for ttl. Store errors
// surface to the caller as connectivity failures.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, revokedKeyPrefix+tokenID, "", ttl).Err()
}

// IsRevoked reports whether a live revocation entry exists for the token ID.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
