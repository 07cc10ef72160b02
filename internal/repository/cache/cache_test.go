package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/repository/cache"
)

func TestKVStore_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := cache.NewKVStore(db, zerolog.Nop())
	ctx := context.Background()

	mock.ExpectGet("wm:cities").SetVal(`["London"]`)
	value, found, err := store.Get(ctx, "wm:cities")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["London"]`, value)

	mock.ExpectGet("wm:cities").RedisNil()
	_, found, err = store.Get(ctx, "wm:cities")
	require.NoError(t, err)
	assert.False(t, found)

	mock.ExpectGet("wm:cities").SetErr(errors.New("connection reset"))
	_, _, err = store.Get(ctx, "wm:cities")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_SetWithoutExpiry(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := cache.NewKVStore(db, zerolog.Nop())

	mock.ExpectSet("wm:cities", `["Kyiv"]`, 0).SetVal("OK")
	require.NoError(t, store.Set(context.Background(), "wm:cities", `["Kyiv"]`))

	mock.ExpectSet("wm:cities", `[]`, 0).SetErr(errors.New("READONLY"))
	assert.Error(t, store.Set(context.Background(), "wm:cities", `[]`))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_RoundTrip(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := cache.NewRedisClient[models.AirQuality](db, zerolog.Nop(), time.Minute)
	ctx := context.Background()

	mock.ExpectSet("aqi:london", []byte(`{"aqi":2}`), time.Minute).SetVal("OK")
	require.NoError(t, client.Set(ctx, "aqi:london", models.AirQuality{AQI: 2}))

	mock.ExpectGet("aqi:london").SetVal(`{"aqi":2}`)
	got, err := client.Get(ctx, "aqi:london")
	require.NoError(t, err)
	assert.Equal(t, models.AirQuality{AQI: 2}, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Misses(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := cache.NewRedisClient[models.AirQuality](db, zerolog.Nop(), time.Minute)
	ctx := context.Background()

	mock.ExpectGet("aqi:paris").RedisNil()
	_, err := client.Get(ctx, "aqi:paris")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	mock.ExpectGet("aqi:broken").SetVal(`not-json`)
	mock.ExpectDel("aqi:broken").SetVal(1)
	_, err = client.Get(ctx, "aqi:broken")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	mock.ExpectGet("aqi:down").SetErr(errors.New("connection refused"))
	_, err = client.Get(ctx, "aqi:down")
	require.Error(t, err)
	assert.NotErrorIs(t, err, cache.ErrCacheMiss)

	mock.ExpectSet("aqi:down", []byte(`{"aqi":1}`), time.Minute).SetErr(errors.New("connection refused"))
	err = client.Set(ctx, "aqi:down", models.AirQuality{AQI: 1})
	assert.ErrorContains(t, err, "cache write aqi:down")

	assert.NoError(t, mock.ExpectationsWereMet())
}

type fakeCache struct {
	err error
}

func (f fakeCache) Set(context.Context, string, int) error { return f.err }

func (f fakeCache) Get(context.Context, string) (int, error) { return 1, f.err }

type fakeCollector struct {
	ops      []string
	counters [][]string
}

func (f *fakeCollector) ObserveLatency(op string, _ time.Duration) { f.ops = append(f.ops, op) }

func (f *fakeCollector) IncrementCounter(metric string, labels ...string) {
	f.counters = append(f.counters, append([]string{metric}, labels...))
}

func TestMetricsDecorator(t *testing.T) {
	col := &fakeCollector{}
	ok := cache.NewMetricsDecorator[int](fakeCache{}, col)
	missing := cache.NewMetricsDecorator[int](fakeCache{err: cache.ErrCacheMiss}, col)
	failing := cache.NewMetricsDecorator[int](fakeCache{err: errors.New("down")}, col)
	ctx := context.Background()

	_ = ok.Set(ctx, "k", 1)
	_, _ = ok.Get(ctx, "k")
	_, _ = missing.Get(ctx, "k")
	_, _ = failing.Get(ctx, "k")
	_ = failing.Set(ctx, "k", 1)

	assert.Equal(t, []string{"cache_set", "cache_get", "cache_get", "cache_get", "cache_set"}, col.ops)
	assert.Equal(t, [][]string{
		{"cache_set", "success"},
		{"cache_get", "hit"},
		{"cache_get", "miss"},
		{"cache_get", "error"},
		{"cache_set", "error"},
	}, col.counters)
}
