package metrics

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const divisor = 100

// Metrics holds Prometheus metric vectors for the dashboard service.
type Metrics struct {
	Registry *prometheus.Registry

	// HTTP server metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Domain metrics
	WeatherAPICallsTotal     *prometheus.CounterVec
	WeatherAPICallDuration   *prometheus.HistogramVec
	ForecastUnavailableTotal prometheus.Counter
	DirectoryMutationsTotal  *prometheus.CounterVec
	TrackedCities            prometheus.Gauge
}

// NewMetrics constructs all dashboard metrics on a fresh registry.
func NewMetrics(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests received",
			},
			[]string{"method", "endpoint", "status_class"},
		),

		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "http_request_duration_seconds",
				Help:      "Histogram of HTTP request latencies",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		WeatherAPICallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "weather_api_calls_total",
				Help:      "OpenWeatherMap calls by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),

		WeatherAPICallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "weather_api_call_duration_seconds",
				Help:      "OpenWeatherMap call latencies",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),

		ForecastUnavailableTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "forecast_unavailable_total",
				Help:      "Forecast requests that degraded to the unavailable placeholder",
			},
		),

		DirectoryMutationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "directory_mutations_total",
				Help:      "Persisted city list changes",
			},
			[]string{"action"},
		),

		TrackedCities: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: serviceName,
				Name:      "tracked_cities",
				Help:      "Number of cities in the directory",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.WeatherAPICallsTotal,
		m.WeatherAPICallDuration,
		m.ForecastUnavailableTotal,
		m.DirectoryMutationsTotal,
		m.TrackedCities,
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(
				collectors.GoRuntimeMetricsRule{Matcher: regexp.MustCompile("/sched/latencies:seconds")},
			),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// HTTPMiddleware returns a Gin middleware to instrument HTTP endpoints.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		d := time.Since(start)

		m.HTTPRequestsTotal.With(prometheus.Labels{
			"method":       c.Request.Method,
			"endpoint":     c.FullPath(),
			"status_class": getStatusClass(c.Writer.Status()),
		}).Inc()
		m.HTTPRequestDuration.With(prometheus.Labels{
			"method":   c.Request.Method,
			"endpoint": c.FullPath(),
		}).Observe(d.Seconds())
	}
}

// Handler serves this registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

func (m *Metrics) ObserveAPICall(endpoint, outcome string, d time.Duration) {
	m.WeatherAPICallsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.WeatherAPICallDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (m *Metrics) ForecastUnavailable() {
	m.ForecastUnavailableTotal.Inc()
}

func (m *Metrics) CitiesChanged(action string, count int) {
	m.DirectoryMutationsTotal.WithLabelValues(action).Inc()
	m.TrackedCities.Set(float64(count))
}

func getStatusClass(code int) string {
	return fmt.Sprintf("%dxx", code/divisor)
}
