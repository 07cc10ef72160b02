package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// KVStore keeps raw string values in redis without expiry.
type KVStore struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewKVStore(client *redis.Client, logger zerolog.Logger) *KVStore {
	logger = logger.With().Str("component", "RedisKVStore").Logger()
	return &KVStore{client: client, log: logger}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		s.log.Error().Err(err).Ctx(ctx).Str("key", key).Msg("failed to read key")
		return "", false, fmt.Errorf("read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		s.log.Error().Err(err).Ctx(ctx).Str("key", key).Msg("failed to write key")
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}
