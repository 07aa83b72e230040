package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

const defaultUserTTL = 30 * time.Second

// UserCache is a short-TTL token→user cache backing the session-check
// endpoint, so rapid page loads do not stampede the upstream who-am-I
// endpoint. Keys are token digests; raw tokens never reach Redis.
// Key format: session:user:<sha256(token)>
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUserCache wraps the given Redis client. A non-positive ttl falls back
// to defaultUserTTL.
func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	if ttl <= 0 {
		ttl = defaultUserTTL
	}
	return &UserCache{client: client, ttl: ttl}
}

// Get returns the cached user for this token, if any. Errors are returned
// for logging but callers treat them as a miss.
func (c *UserCache) Get(ctx context.Context, token string) (*domain.User, bool, error) {
	raw, err := c.client.Get(ctx, c.key(token)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("user cache get: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, false, fmt.Errorf("user cache decode: %w", err)
	}
	return &user, true, nil
}

// Set stores the user under the token's digest (expires after the TTL).
func (c *UserCache) Set(ctx context.Context, token string, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("user cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(token), raw, c.ttl).Err()
}

// Invalidate drops the cached entry, called on logout.
func (c *UserCache) Invalidate(ctx context.Context, token string) error {
	return c.client.Del(ctx, c.key(token)).Err()
}

func (c *UserCache) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:user:" + hex.EncodeToString(sum[:])
}
