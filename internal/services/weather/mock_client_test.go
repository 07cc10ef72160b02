//go:build unit

package weather_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

type mockWrapped struct {
	mock.Mock
}

func (m *mockWrapped) Current(ctx context.Context, city string) (models.CurrentConditions, error) {
	args := m.Called(ctx, city)
	data, _ := args.Get(0).(models.CurrentConditions)
	return data, args.Error(1)
}

func (m *mockWrapped) Forecast(ctx context.Context, city string) (models.ForecastFeed, error) {
	args := m.Called(ctx, city)
	data, _ := args.Get(0).(models.ForecastFeed)
	return data, args.Error(1)
}

func (m *mockWrapped) AirQuality(ctx context.Context, coords models.Coordinates) (models.AirQuality, error) {
	args := m.Called(ctx, coords)
	data, _ := args.Get(0).(models.AirQuality)
	return data, args.Error(1)
}

func (m *mockWrapped) Geocode(ctx context.Context, name string) (models.Place, error) {
	args := m.Called(ctx, name)
	data, _ := args.Get(0).(models.Place)
	return data, args.Error(1)
}

func (m *mockWrapped) ReverseGeocode(ctx context.Context, coords models.Coordinates) (models.Place, error) {
	args := m.Called(ctx, coords)
	data, _ := args.Get(0).(models.Place)
	return data, args.Error(1)
}
