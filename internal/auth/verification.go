package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	verifyKeyPrefix   = "verify:"
	cooldownKeyPrefix = "cooldown:"
)

// ErrRateLimited is returned when a code was already issued for the email
// within the cooldown window.
var ErrRateLimited = errors.New("verification code recently issued")

// VerificationCodeStore holds short-lived 6-digit email verification codes
// and per-email cooldown markers in Redis.
type VerificationCodeStore struct {
	client   *redis.Client
	codeTTL  time.Duration
	cooldown time.Duration
}

// NewVerificationCodeStore wraps the shared Redis client.
func NewVerificationCodeStore(client *redis.Client, codeTTL, cooldown time.Duration) *VerificationCodeStore {
	return &VerificationCodeStore{client: client, codeTTL: codeTTL, cooldown: cooldown}
}

// Issue generates and stores a fresh code for the email. The cooldown marker
// is claimed with a single SETNX so two concurrent calls cannot both
// succeed; the loser gets ErrRateLimited.
func (s *VerificationCodeStore) Issue(ctx context.Context, email string) (string, error) {
	claimed, err := s.client.SetNX(ctx, cooldownKeyPrefix+email, "1", s.cooldown).Result()
	if err != nil {
		return "", err
	}
	if !claimed {
		return "", ErrRateLimited
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, verifyKeyPrefix+email, code, s.codeTTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Fetch returns the stored code, or ok=false if none is live.
func (s *VerificationCodeStore) Fetch(ctx context.Context, email string) (string, bool, error) {
	code, err := s.client.Get(ctx, verifyKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return code, true, nil
}

// Clear removes the stored code after successful verification. The cooldown
// marker is left to expire on its own.
func (s *VerificationCodeStore) Clear(ctx context.Context, email string) error {
	return s.client.Del(ctx, verifyKeyPrefix+email).Err()
}

// generateCode draws a uniform crypto-random code over 000000-999999.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
