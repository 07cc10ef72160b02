package weather

import (
	"context"
	"net/http"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the set of OpenWeatherMap lookups used by the dashboard.
// ClientOpenWeatherMap implements it and every decorator in this package wraps one.
type Client interface {
	Current(ctx context.Context, city string) (models.CurrentConditions, error)
	Forecast(ctx context.Context, city string) (models.ForecastFeed, error)
	AirQuality(ctx context.Context, coords models.Coordinates) (models.AirQuality, error)
	Geocode(ctx context.Context, name string) (models.Place, error)
	ReverseGeocode(ctx context.Context, coords models.Coordinates) (models.Place, error)
}

const (
	EndpointCurrent    = "/data/2.5/weather"
	EndpointForecast   = "/data/2.5/forecast"
	EndpointAirQuality = "/data/2.5/air_pollution"
	EndpointGeocode    = "/geo/1.0/direct"
	EndpointReverse    = "/geo/1.0/reverse"
)
