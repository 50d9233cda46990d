package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const codeTTL = 10 * time.Minute

// CodeStore holds short-lived 2FA verification codes in Redis.
// Key format: verify:<email>
type CodeStore struct {
	client *redis.Client
}

// NewCodeStore creates a CodeStore wrapping the given Redis client.
func NewCodeStore(client *redis.Client) *CodeStore {
	return &CodeStore{client: client}
}

// Put stores the code for email (expires after codeTTL).
func (s *CodeStore) Put(ctx context.Context, email, code string) error {
	return s.client.Set(ctx, s.key(email), code, codeTTL).Err()
}

// Match reports whether the submitted code equals the stored one. An
// expired or missing code simply fails to match.
func (s *CodeStore) Match(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.client.Get(ctx, s.key(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("code lookup: %w", err)
	}
	return stored == code, nil
}

// Delete removes the code once consumed.
func (s *CodeStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, s.key(email)).Err()
}

func (s *CodeStore) key(email string) string {
	return fmt.Sprintf("verify:%s", email)
}
