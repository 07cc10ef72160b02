//go:build unit

package weather_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/weather"
)

type recordedCall struct {
	endpoint, outcome string
}

type fakeRecorder struct {
	calls []recordedCall
}

func (f *fakeRecorder) ObserveAPICall(endpoint, outcome string, _ time.Duration) {
	f.calls = append(f.calls, recordedCall{endpoint, outcome})
}

func TestInstrumentedClient_RecordsOutcomes(t *testing.T) {
	wrapped := new(mockWrapped)
	wrapped.On("Current", mock.Anything, "London").Return(models.CurrentConditions{Name: "London"}, nil)
	wrapped.On("Geocode", mock.Anything, "Atlantis").Return(models.Place{}, models.ErrNotFound)
	wrapped.On("Forecast", mock.Anything, "London").Return(models.ForecastFeed{}, errors.New("boom"))

	rec := &fakeRecorder{}
	c := weather.NewInstrumentedClient(wrapped, rec)
	ctx := context.Background()

	_, _ = c.Current(ctx, "London")
	_, _ = c.Geocode(ctx, "Atlantis")
	_, _ = c.Forecast(ctx, "London")

	assert.Equal(t, []recordedCall{
		{weather.EndpointCurrent, weather.OutcomeSuccess},
		{weather.EndpointGeocode, weather.OutcomeNotFound},
		{weather.EndpointForecast, weather.OutcomeError},
	}, rec.calls)
}
