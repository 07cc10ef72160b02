package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"github.com/wagslane/go-rabbitmq"
	"go.uber.org/zap"

	_ "github.com/Nazarious-ucu/weather-dashboard/docs"
	"github.com/Nazarious-ucu/weather-dashboard/internal/config"
	"github.com/Nazarious-ucu/weather-dashboard/internal/dashboard"
	"github.com/Nazarious-ucu/weather-dashboard/internal/directory"
	http2 "github.com/Nazarious-ucu/weather-dashboard/internal/handlers/http"
	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/producers"
	"github.com/Nazarious-ucu/weather-dashboard/internal/repository/cache"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/clock"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/location"
	loggerT "github.com/Nazarious-ucu/weather-dashboard/internal/services/logger"
	metricsSvc "github.com/Nazarious-ucu/weather-dashboard/internal/services/metrics"
	serviceWeather "github.com/Nazarious-ucu/weather-dashboard/internal/services/weather"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/weather/decorators"
	fLogger "github.com/Nazarious-ucu/weather-dashboard/pkg/logger"
)

const (
	shutdownTimeout = 5 * time.Second
	metricsPrefix   = "dashboard"
)

// ServiceContainer holds initialized dependencies for the server.
type ServiceContainer struct {
	Dispatcher *dashboard.Dispatcher
	Clock      *clock.Ticker

	Router *gin.Engine
	Srv    *http.Server

	Db          *sql.DB
	RedisClient *redis.Client
	RabbitConn  *rabbitmq.Conn
	Publisher   *rabbitmq.Publisher
	fileLogger  *zap.Logger
}

// App ties together config, logger and metrics for startup and shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics
}

func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Start builds the services, restores the dashboard, serves HTTP and blocks until ctx is done.
func (a *App) Start(ctx context.Context) error {
	srvContainer, err := a.Init(ctx)
	if err != nil {
		return err
	}

	srvContainer.Dispatcher.Bootstrap(ctx)
	srvContainer.Clock.Start()

	serveErr := make(chan error, 1)
	go func() {
		a.l.Info().Str("address", srvContainer.Srv.Addr).Msg("HTTP server running")
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		a.l.Info().Msg("shutdown signal received, stopping dashboard")
	case err := <-serveErr:
		if err != nil {
			a.l.Error().Err(err).Msg("HTTP server failed")
			a.Stop(srvContainer)
			return err
		}
	}

	a.Stop(srvContainer)
	a.l.Info().Msg("application shutdown successfully")
	return nil
}

// Stop shuts the server down and releases every connection. Failures are logged.
func (a *App) Stop(srvContainer ServiceContainer) {
	a.l.Info().Msg("stopping application…")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		a.l.Error().Err(err).Msg("HTTP shutdown error")
	} else {
		a.l.Info().Msg("HTTP server stopped")
	}

	srvContainer.Clock.Stop(ctx)

	if srvContainer.Publisher != nil {
		srvContainer.Publisher.Close()
	}
	if srvContainer.RabbitConn != nil {
		if err := srvContainer.RabbitConn.Close(); err != nil {
			a.l.Error().Err(err).Msg("RabbitMQ close error")
		}
	}
	if srvContainer.RedisClient != nil {
		if err := srvContainer.RedisClient.Close(); err != nil {
			a.l.Error().Err(err).Msg("redis close error")
		}
	}
	if srvContainer.Db != nil {
		if err := srvContainer.Db.Close(); err != nil {
			a.l.Error().Err(err).Msg("DB close error")
		} else {
			a.l.Info().Msg("database closed")
		}
	}
	if err := srvContainer.fileLogger.Sync(); err != nil {
		a.l.Warn().Err(err).Msg("failed to sync file logger")
	}
	a.l.Info().Msg("shutdown complete")
}

// Init wires the weather client chain, the store, the dashboard and the router without
// starting anything.
func (a *App) Init(ctx context.Context) (ServiceContainer, error) {
	a.l.Info().
		Str("store", a.cfg.Store.Driver).
		Bool("cache", a.cfg.Redis.CacheEnabled).
		Bool("rabbitmq", a.cfg.RabbitMQ.Enabled).
		Bool("location", a.cfg.Location.Enabled).
		Msg("initializing weather dashboard")

	var c ServiceContainer

	loc, err := a.cfg.TimeLocation()
	if err != nil {
		return c, err
	}
	now := func() time.Time { return time.Now().In(loc) }

	if a.cfg.Store.Driver == storeRedis || a.cfg.Redis.CacheEnabled {
		c.RedisClient = newRedisConnection(a.cfg.Redis)
	}

	store, db, err := a.newStore(ctx, c.RedisClient)
	if err != nil {
		return c, err
	}
	c.Db = db

	c.fileLogger, err = fLogger.NewFileLogger(a.cfg.HTTPLogsPath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create file logger, outbound requests will not be logged")
		c.fileLogger = zap.NewNop()
	}
	httpLogClient := &http.Client{
		Transport: loggerT.NewRoundTripper(c.fileLogger),
		Timeout:   time.Duration(a.cfg.OpenWeatherMap.HTTPTimeout) * time.Second,
	}

	client := a.newWeatherClient(httpLogClient, c.RedisClient)

	c.Clock = clock.NewTicker(client, a.l, a.cfg.ClockSpec, now)

	var sensor location.Sensor = location.Disabled{}
	if a.cfg.Location.Enabled {
		fix := models.Coordinates{Lat: a.cfg.Location.Lat, Lon: a.cfg.Location.Lon}
		sensor = location.NewFixedSensor(fix, nil)
	}

	var publish interface {
		CitiesChanged(ctx context.Context, action, city string, cities []string) error
	} = producers.Noop{}
	if a.cfg.RabbitMQ.Enabled {
		if conn, pub, err := a.setupRabbit(); err != nil {
			a.l.Error().Err(err).Msg("RabbitMQ unavailable, city changes will not be published")
		} else {
			c.RabbitConn, c.Publisher = conn, pub
			publish = producers.NewProducer(pub, a.l)
		}
	}

	c.Dispatcher = dashboard.NewDispatcher(
		directory.New(store, a.cfg.Store.StorageKey, a.l),
		client,
		a.l,
		dashboard.Options{
			Location: loc,
			Clock:    c.Clock,
			Sensor:   sensor,
			Publish:  publish,
			Metrics:  a.m,
		},
	)

	c.Router = gin.New()
	c.Router.Use(gin.Recovery())
	c.Router.Use(a.m.HTTPMiddleware())
	c.Router.GET("/metrics", gin.WrapH(a.m.Handler()))
	c.Router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))
	http2.NewHandler(c.Dispatcher, now).Register(c.Router.Group("/api"))

	c.Srv = &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     c.Router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}
	return c, nil
}

// newWeatherClient decorates the OpenWeatherMap client with metrics, rate limiting, a circuit
// breaker and, when enabled, a redis cache for current conditions.
func (a *App) newWeatherClient(httpClient serviceWeather.HTTPClient, redisClient *redis.Client) serviceWeather.Client {
	breakerCfg := serviceWeather.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}

	openWeather := serviceWeather.NewClientOpenWeatherMap(
		a.cfg.OpenWeatherMap.APIKey,
		a.cfg.OpenWeatherMap.URL,
		httpClient,
		a.l,
	)
	var client serviceWeather.Client = serviceWeather.NewBreakerClient("OpenWeatherMap", breakerCfg,
		serviceWeather.NewRateLimitedClient(
			serviceWeather.NewInstrumentedClient(openWeather, a.m),
			float64(a.cfg.OpenWeatherMap.RateLimit),
			a.cfg.OpenWeatherMap.RateBurst,
		),
	)

	if a.cfg.Redis.CacheEnabled && redisClient != nil {
		cacheMetrics := cache.NewMetricsDecorator[models.CurrentConditions](
			cache.NewRedisClient[models.CurrentConditions](redisClient, a.l,
				time.Duration(a.cfg.Redis.LiveTime)*time.Minute),
			metricsSvc.NewPromCollector(a.m.Registry, metricsPrefix),
		)
		client = decorators.NewCachedService(client, cacheMetrics, a.l)
	}
	return client
}

func newRedisConnection(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Address(), Password: cfg.Password, DB: cfg.DbType})
}
