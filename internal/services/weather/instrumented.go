package weather

import (
	"context"
	"errors"
	"time"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

type callRecorder interface {
	ObserveAPICall(endpoint, outcome string, d time.Duration)
}

// InstrumentedClient reports every call's endpoint, outcome and latency.
type InstrumentedClient struct {
	wrapped  Client
	recorder callRecorder
}

func NewInstrumentedClient(wrapped Client, recorder callRecorder) *InstrumentedClient {
	return &InstrumentedClient{wrapped: wrapped, recorder: recorder}
}

func (c *InstrumentedClient) observe(endpoint string, start time.Time, err error) {
	outcome := OutcomeSuccess
	switch {
	case errors.Is(err, models.ErrNotFound):
		outcome = OutcomeNotFound
	case err != nil:
		outcome = OutcomeError
	}
	c.recorder.ObserveAPICall(endpoint, outcome, time.Since(start))
}

func (c *InstrumentedClient) Current(ctx context.Context, city string) (models.CurrentConditions, error) {
	start := time.Now()
	data, err := c.wrapped.Current(ctx, city)
	c.observe(EndpointCurrent, start, err)
	return data, err
}

func (c *InstrumentedClient) Forecast(ctx context.Context, city string) (models.ForecastFeed, error) {
	start := time.Now()
	feed, err := c.wrapped.Forecast(ctx, city)
	c.observe(EndpointForecast, start, err)
	return feed, err
}

func (c *InstrumentedClient) AirQuality(ctx context.Context, coords models.Coordinates) (models.AirQuality, error) {
	start := time.Now()
	aq, err := c.wrapped.AirQuality(ctx, coords)
	c.observe(EndpointAirQuality, start, err)
	return aq, err
}

func (c *InstrumentedClient) Geocode(ctx context.Context, name string) (models.Place, error) {
	start := time.Now()
	p, err := c.wrapped.Geocode(ctx, name)
	c.observe(EndpointGeocode, start, err)
	return p, err
}

func (c *InstrumentedClient) ReverseGeocode(ctx context.Context, coords models.Coordinates) (models.Place, error) {
	start := time.Now()
	p, err := c.wrapped.ReverseGeocode(ctx, coords)
	c.observe(EndpointReverse, start, err)
	return p, err
}
