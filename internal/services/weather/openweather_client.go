package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

type apiErrorBody struct {
	Message string `json:"message"`
}

type airPollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

// ClientOpenWeatherMap fetches weather data from the OpenWeatherMap API.
type ClientOpenWeatherMap struct {
	APIKey  string
	baseURL string
	client  HTTPClient
	logger  zerolog.Logger
}

// NewClientOpenWeatherMap constructs a new OpenWeatherMap client. baseURL is the API root,
// e.g. https://api.openweathermap.org.
func NewClientOpenWeatherMap(apiKey, baseURL string,
	httpClient HTTPClient, logger zerolog.Logger,
) *ClientOpenWeatherMap {
	return &ClientOpenWeatherMap{
		APIKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logger,
	}
}

func (s *ClientOpenWeatherMap) Current(ctx context.Context, city string) (models.CurrentConditions, error) {
	var data models.CurrentConditions
	params := url.Values{"q": {city}}

	if err := s.get(ctx, EndpointCurrent, params, &data); err != nil {
		return models.CurrentConditions{}, cityError(city, err)
	}
	return data, nil
}

func (s *ClientOpenWeatherMap) Forecast(ctx context.Context, city string) (models.ForecastFeed, error) {
	var feed models.ForecastFeed
	params := url.Values{"q": {city}}

	if err := s.get(ctx, EndpointForecast, params, &feed); err != nil {
		return models.ForecastFeed{}, cityError(city, err)
	}
	return feed, nil
}

func (s *ClientOpenWeatherMap) AirQuality(ctx context.Context, coords models.Coordinates) (models.AirQuality, error) {
	var raw airPollutionResponse
	if err := s.get(ctx, EndpointAirQuality, coordParams(coords), &raw); err != nil {
		return models.AirQuality{}, err
	}
	if len(raw.List) == 0 {
		return models.AirQuality{}, &models.TransportError{
			StatusCode: http.StatusOK,
			Message:    "air quality data missing",
		}
	}
	return models.AirQuality{AQI: raw.List[0].Main.AQI}, nil
}

// Geocode resolves a city name to its first match.
func (s *ClientOpenWeatherMap) Geocode(ctx context.Context, name string) (models.Place, error) {
	params := url.Values{"q": {name}, "limit": {"1"}}
	return s.place(ctx, EndpointGeocode, params, name)
}

// ReverseGeocode resolves coordinates to the nearest named place.
func (s *ClientOpenWeatherMap) ReverseGeocode(ctx context.Context, coords models.Coordinates) (models.Place, error) {
	params := coordParams(coords)
	params.Set("limit", "1")
	return s.place(ctx, EndpointReverse, params, fmt.Sprintf("%g,%g", coords.Lat, coords.Lon))
}

func (s *ClientOpenWeatherMap) place(
	ctx context.Context,
	endpoint string,
	params url.Values,
	query string,
) (models.Place, error) {
	var places []models.Place
	if err := s.get(ctx, endpoint, params, &places); err != nil {
		return models.Place{}, err
	}
	if len(places) == 0 {
		s.logger.Info().
			Ctx(ctx).
			Str("endpoint", endpoint).
			Str("query", query).
			Msg("geocoding returned no results")
		return models.Place{}, fmt.Errorf("%s: %w", query, models.ErrNotFound)
	}
	return places[0], nil
}

// get performs a GET against endpoint and decodes a 2xx body into out.
// Non-success statuses become a *models.TransportError carrying the API's message.
func (s *ClientOpenWeatherMap) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	start := time.Now()
	params.Set("units", "metric")
	params.Set("appid", s.APIKey)
	reqURL := s.baseURL + endpoint + "?" + params.Encode()

	s.logger.Debug().
		Ctx(ctx).
		Str("endpoint", endpoint).
		Msg("starting OpenWeatherMap request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("endpoint", endpoint).
			Msg("failed to create HTTP request")
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("endpoint", endpoint).
			Msg("error sending HTTP request to OpenWeatherMap")
		return &models.TransportError{Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().
				Err(cerr).
				Str("endpoint", endpoint).
				Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		te := statusError(resp, body)
		s.logger.Error().
			Ctx(ctx).
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("message", te.Message).
			Msg("OpenWeatherMap API returned non-success status")
		return te
	}

	if err := json.Unmarshal(body, out); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("endpoint", endpoint).
			Msg("failed to decode OpenWeatherMap response")
		return &models.TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode %s response: %w", endpoint, err),
		}
	}

	s.logger.Info().
		Ctx(ctx).
		Str("endpoint", endpoint).
		Dur("duration_ms", time.Since(start)).
		Msg("successfully fetched OpenWeatherMap data")
	return nil
}

func statusError(resp *http.Response, body []byte) *models.TransportError {
	var apiErr apiErrorBody
	msg := ""
	if err := json.Unmarshal(body, &apiErr); err == nil {
		msg = apiErr.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	if msg == "" {
		msg = resp.Status
	}
	return &models.TransportError{StatusCode: resp.StatusCode, Message: msg}
}

// cityError maps a 404 on a by-name lookup to ErrNotFound.
func cityError(city string, err error) error {
	var te *models.TransportError
	if errors.As(err, &te) && te.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", city, models.ErrNotFound)
	}
	return err
}

func coordParams(c models.Coordinates) url.Values {
	return url.Values{
		"lat": {strconv.FormatFloat(c.Lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(c.Lon, 'f', -1, 64)},
	}
}
