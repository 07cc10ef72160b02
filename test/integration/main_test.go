//go:build integration

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-dashboard/internal/app"
	"github.com/Nazarious-ucu/weather-dashboard/internal/config"
	metricsSvc "github.com/Nazarious-ucu/weather-dashboard/internal/services/metrics"
)

var (
	testServerURL string
	db            *sql.DB
)

// knownCities are the cities the fake weather API answers for. Paris has no forecast.
var knownCities = map[string]struct {
	lat, lon float64
	temp     float64
}{
	"London":   {51.51, -0.13, 15.4},
	"New York": {40.71, -74.01, 24.2},
	"Mumbai":   {19.08, 72.88, 31.0},
	"Paris":    {48.86, 2.35, 22.6},
	"Kyiv":     {50.45, 30.52, 18.1},
}

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	dir, err := os.MkdirTemp("", "dashboard-integration")
	if err != nil {
		log.Panicf("failed to create temp dir: %v", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	weatherAPI := newFakeWeatherAPI()
	defer weatherAPI.Close()

	cfg := config.Config{
		OpenWeatherMap: config.OpenWeatherMap{
			APIKey:      "validApiKey",
			URL:         weatherAPI.URL,
			HTTPTimeout: 5,
			RateLimit:   100,
			RateBurst:   100,
		},
		Server:    config.Server{Host: "localhost", Port: "0", ReadTimeout: 10},
		Breaker:   config.Breaker{TimeInterval: 30, TimeTimeOut: 10, RepeatNumber: 5},
		Store:     config.Store{Driver: "sqlite", Dialect: "sqlite", Source: filepath.Join(dir, "dashboard.db"), StorageKey: "wm:cities"},
		ClockSpec: "@every 1m",
		Timezone:  "UTC",

		HTTPLogsPath: filepath.Join(dir, "http.log"),
	}

	application := app.New(cfg, zerolog.Nop(), metricsSvc.NewMetrics("integration"))
	srvContainer, err := application.Init(context.Background())
	if err != nil {
		log.Panicf("failed to initialize application: %v", err)
	}
	if srvContainer.Db == nil {
		log.Panic("database is not initialized")
	}

	srvContainer.Dispatcher.Bootstrap(context.Background())

	testServer := httptest.NewServer(srvContainer.Router)
	defer func() {
		testServer.Close()
		application.Stop(srvContainer)
	}()

	testServerURL = testServer.URL
	db = srvContainer.Db

	return m.Run()
}

func newFakeWeatherAPI() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get("q")
		c, ok := knownCities[city]
		if !ok {
			writeJSON(w, http.StatusNotFound, `{"cod":"404","message":"city not found"}`)
			return
		}
		writeJSON(w, http.StatusOK, fmt.Sprintf(`{
			"name": %q,
			"coord": {"lat": %g, "lon": %g},
			"main": {"temp": %g, "feels_like": 14, "temp_min": 12, "temp_max": 18, "pressure": 1012, "humidity": 70},
			"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
			"wind": {"speed": 4.1, "deg": 90},
			"clouds": {"all": 0},
			"visibility": 10000,
			"sys": {"sunrise": 1749528000, "sunset": 1749585600},
			"timezone": 3600,
			"dt": 1749556800
		}`, city, c.lat, c.lon, c.temp))
	})

	mux.HandleFunc("/data/2.5/forecast", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "Paris" {
			writeJSON(w, http.StatusInternalServerError, `{"cod":"500","message":"Internal error"}`)
			return
		}
		var items []string
		start := time.Now().UTC().Truncate(24 * time.Hour)
		for h := 0; h < 6*24; h += 3 {
			items = append(items, fmt.Sprintf(
				`{"dt": %d, "main": {"temp_min": %d, "temp_max": %d}, "weather": [{"main": "Clouds", "icon": "03d"}]}`,
				start.Add(time.Duration(h)*time.Hour).Unix(), 5+h%10, 15+h%10))
		}
		writeJSON(w, http.StatusOK, `{"city": {"name": "x", "timezone": 0}, "list": [`+strings.Join(items, ",")+`]}`)
	})

	mux.HandleFunc("/data/2.5/air_pollution", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"list": [{"main": {"aqi": 2}}]}`)
	})

	mux.HandleFunc("/geo/1.0/reverse", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lat") == "50.45" {
			writeJSON(w, http.StatusOK, `[{"name": "Kyiv", "country": "UA", "lat": 50.45, "lon": 30.52}]`)
			return
		}
		writeJSON(w, http.StatusOK, `[]`)
	})

	return httptest.NewServer(mux)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, testServerURL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func storedCities(t *testing.T) []string {
	t.Helper()

	var raw string
	err := db.QueryRow(`SELECT value FROM kv WHERE key = ?`, "wm:cities").Scan(&raw)
	require.NoError(t, err)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(raw), &names))
	return names
}
