package weather

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

// RateLimitedClient shares one token bucket across every endpoint of the wrapped Client.
type RateLimitedClient struct {
	wrapped Client
	limiter *rate.Limiter
}

// NewRateLimitedClient allows rps requests per second (fractional values allowed) with the given burst.
func NewRateLimitedClient(wrapped Client, rps float64, burst int) *RateLimitedClient {
	return &RateLimitedClient{
		wrapped: wrapped,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedClient) wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return &models.TransportError{Err: fmt.Errorf("rate limit wait canceled: %w", err)}
	}
	return nil
}

func (r *RateLimitedClient) Current(ctx context.Context, city string) (models.CurrentConditions, error) {
	if err := r.wait(ctx); err != nil {
		return models.CurrentConditions{}, err
	}
	return r.wrapped.Current(ctx, city)
}

func (r *RateLimitedClient) Forecast(ctx context.Context, city string) (models.ForecastFeed, error) {
	if err := r.wait(ctx); err != nil {
		return models.ForecastFeed{}, err
	}
	return r.wrapped.Forecast(ctx, city)
}

func (r *RateLimitedClient) AirQuality(ctx context.Context, coords models.Coordinates) (models.AirQuality, error) {
	if err := r.wait(ctx); err != nil {
		return models.AirQuality{}, err
	}
	return r.wrapped.AirQuality(ctx, coords)
}

func (r *RateLimitedClient) Geocode(ctx context.Context, name string) (models.Place, error) {
	if err := r.wait(ctx); err != nil {
		return models.Place{}, err
	}
	return r.wrapped.Geocode(ctx, name)
}

func (r *RateLimitedClient) ReverseGeocode(ctx context.Context, coords models.Coordinates) (models.Place, error) {
	if err := r.wait(ctx); err != nil {
		return models.Place{}, err
	}
	return r.wrapped.ReverseGeocode(ctx, coords)
}

var (
	_ Client = (*ClientOpenWeatherMap)(nil)
	_ Client = (*BreakerClient)(nil)
	_ Client = (*RateLimitedClient)(nil)
	_ Client = (*InstrumentedClient)(nil)
)
