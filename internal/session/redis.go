package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/investa-app/webclient/pkg/logger"
)

// keyPrefix namespaces session keys in Redis.
const keyPrefix = "session:"

// RedisStore is a Redis-backed session store. Sessions survive restarts and
// are shared across instances; entries expire through Redis TTLs.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisStore creates a Redis-backed store whose sessions expire after ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: log.WithField("component", "session"),
	}
}

// Get returns the token for a session id, or ErrNotFound when the key is
// missing or already expired.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		s.logger.Error("session lookup failed", "error", err)
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return token, nil
}

// Set stores a token under a session id with the store's TTL.
func (s *RedisStore) Set(ctx context.Context, sessionID, token string) error {
	if err := s.client.Set(ctx, keyPrefix+sessionID, token, s.ttl).Err(); err != nil {
		s.logger.Error("session write failed", "error", err)
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Delete removes a session.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		s.logger.Error("session delete failed", "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
