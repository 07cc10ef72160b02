package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrCacheMiss means the key is absent, expired or held an undecodable value.
var ErrCacheMiss = errors.New("cache miss")

// RedisClient stores JSON-encoded values of type T, each written with the same TTL.
type RedisClient[T any] struct {
	client *redis.Client
	logger zerolog.Logger
	ttl    time.Duration
}

func NewRedisClient[T any](client *redis.Client, logger zerolog.Logger, ttl time.Duration) *RedisClient[T] {
	return &RedisClient[T]{
		client: client,
		logger: logger.With().Str("component", "RedisCache").Logger(),
		ttl:    ttl,
	}
}

func (c *RedisClient[T]) Set(ctx context.Context, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache write %s: %w", key, err)
	}
	c.logger.Debug().Ctx(ctx).Str("key", key).Dur("ttl", c.ttl).Msg("cached")
	return nil
}

// Get returns ErrCacheMiss for absent keys. A value that no longer decodes into T is
// evicted and also reported as a miss.
//
//nolint:ireturn
func (c *RedisClient[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return zero, ErrCacheMiss
	case err != nil:
		return zero, fmt.Errorf("cache read %s: %w", key, err)
	}

	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Warn().Ctx(ctx).Str("key", key).Err(err).Msg("evicting undecodable cache entry")
		if delErr := c.client.Del(ctx, key).Err(); delErr != nil {
			c.logger.Error().Ctx(ctx).Str("key", key).Err(delErr).Msg("cache eviction failed")
		}
		return zero, ErrCacheMiss
	}
	return result, nil
}
