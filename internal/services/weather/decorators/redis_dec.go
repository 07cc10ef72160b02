package decorators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/repository/cache"
)

type weatherClient interface {
	Current(ctx context.Context, city string) (models.CurrentConditions, error)
	Forecast(ctx context.Context, city string) (models.ForecastFeed, error)
	AirQuality(ctx context.Context, coords models.Coordinates) (models.AirQuality, error)
	Geocode(ctx context.Context, name string) (models.Place, error)
	ReverseGeocode(ctx context.Context, coords models.Coordinates) (models.Place, error)
}

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
}

// CachedService caches current conditions by city. The other lookups pass through.
type CachedService struct {
	weatherClient
	cache  cacheClient[models.CurrentConditions]
	logger zerolog.Logger
}

func NewCachedService(
	inner weatherClient,
	store cacheClient[models.CurrentConditions],
	logger zerolog.Logger,
) *CachedService {
	return &CachedService{weatherClient: inner, cache: store, logger: logger}
}

func CurrentKey(city string) string {
	return fmt.Sprintf("weather:current:%s", strings.ToLower(strings.TrimSpace(city)))
}

func (s *CachedService) Current(ctx context.Context, city string) (models.CurrentConditions, error) {
	key := CurrentKey(city)

	current, err := s.cache.Get(ctx, key)
	if err == nil {
		s.logger.Info().
			Ctx(ctx).
			Str("city", city).
			Str("key", key).
			Msg("cache hit")
		return current, nil
	}
	if errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Debug().Ctx(ctx).Str("city", city).Str("key", key).Msg("cache miss")
	} else {
		s.logger.Warn().Ctx(ctx).Str("city", city).Err(err).Msg("cache unavailable, querying the API")
	}

	current, err = s.weatherClient.Current(ctx, city)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("city", city).
			Err(err).
			Msg("inner service failed")
		return models.CurrentConditions{}, err
	}

	if err := s.cache.Set(ctx, key, current); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("city", city).
			Str("key", key).
			Err(err).
			Msg("cache set failed")
	}

	return current, nil
}
