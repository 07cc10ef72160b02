package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

// BreakerClient guards a Client with a circuit breaker. Unknown cities and
// requests abandoned by the caller do not count as failures.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped Client
}

func NewBreakerClient(name string, cfg BreakerConfig, wrapped Client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, models.ErrNotFound) ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, context.DeadlineExceeded)
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) Current(ctx context.Context, city string) (models.CurrentConditions, error) {
	return execute(b, func() (models.CurrentConditions, error) {
		return b.wrapped.Current(ctx, city)
	})
}

func (b *BreakerClient) Forecast(ctx context.Context, city string) (models.ForecastFeed, error) {
	return execute(b, func() (models.ForecastFeed, error) {
		return b.wrapped.Forecast(ctx, city)
	})
}

func (b *BreakerClient) AirQuality(ctx context.Context, coords models.Coordinates) (models.AirQuality, error) {
	return execute(b, func() (models.AirQuality, error) {
		return b.wrapped.AirQuality(ctx, coords)
	})
}

func (b *BreakerClient) Geocode(ctx context.Context, name string) (models.Place, error) {
	return execute(b, func() (models.Place, error) {
		return b.wrapped.Geocode(ctx, name)
	})
}

func (b *BreakerClient) ReverseGeocode(ctx context.Context, coords models.Coordinates) (models.Place, error) {
	return execute(b, func() (models.Place, error) {
		return b.wrapped.ReverseGeocode(ctx, coords)
	})
}

func execute[T any](b *BreakerClient, call func() (T, error)) (T, error) {
	var zero T

	result, err := b.cb.Execute(func() (interface{}, error) {
		v, err := call()
		return v, err
	})
	if err != nil {
		err = fmt.Errorf("%s unavailable: %w", b.name, err)
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, &models.TransportError{Message: err.Error(), Err: err}
		}
		return zero, err
	}
	res, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("%s returned unexpected result", b.name)
	}
	return res, nil
}
