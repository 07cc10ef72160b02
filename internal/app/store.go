package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Nazarious-ucu/weather-dashboard/internal/repository/cache"
	"github.com/Nazarious-ucu/weather-dashboard/internal/repository/memory"
	"github.com/Nazarious-ucu/weather-dashboard/internal/repository/sqlite"
)

const (
	storeSqlite = "sqlite"
	storeRedis  = "redis"
	storeMemory = "memory"
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// newStore opens the key-value store holding the city list. db is set only for sqlite.
func (a *App) newStore(ctx context.Context, redisClient *redis.Client) (kvStore, *sql.DB, error) {
	switch a.cfg.Store.Driver {
	case storeSqlite:
		db, err := sqlite.CreateSqliteDb(ctx, a.cfg.Store.Dialect, a.cfg.Store.Source)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		if err := sqlite.InitSqliteDb(db, a.cfg.Store.Dialect, a.l); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate sqlite store: %w", err)
		}
		return sqlite.NewKVStore(db, a.l), db, nil
	case storeRedis:
		return cache.NewKVStore(redisClient, a.l), nil, nil
	case storeMemory:
		a.l.Warn().Msg("using in-memory store, the city list will not survive a restart")
		return memory.NewStore(), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", a.cfg.Store.Driver)
}
