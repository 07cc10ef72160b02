package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// KVStore keeps string values in the kv table.
type KVStore struct {
	DB  *sql.DB
	log zerolog.Logger
}

func NewKVStore(db *sql.DB, logger zerolog.Logger) *KVStore {
	logger = logger.With().Str("component", "SqliteKVStore").Logger()
	return &KVStore{DB: db, log: logger}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Debug().Ctx(ctx).Str("key", key).Msg("key not found")
		return "", false, nil
	}
	if err != nil {
		s.log.Error().Err(err).Ctx(ctx).Str("key", key).Msg("failed to read key")
		return "", false, fmt.Errorf("read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		s.log.Error().Err(err).Ctx(ctx).Str("key", key).Msg("failed to write key")
		return fmt.Errorf("write %q: %w", key, err)
	}
	s.log.Debug().Ctx(ctx).
		Str("key", key).
		Dur("duration", time.Since(start)).
		Msg("key written")
	return nil
}
