package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Host        string `envconfig:"DASHBOARD_SERVER_HOST" default:"0.0.0.0"`
	Port        string `envconfig:"DASHBOARD_SERVER_PORT" default:"8080"`
	ReadTimeout int    `envconfig:"DASHBOARD_SERVER_TIMEOUT" default:"10"`
}

type OpenWeatherMap struct {
	APIKey      string `envconfig:"OPEN_WEATHER_MAP_API_KEY" required:"true"`
	URL         string `envconfig:"OPEN_WEATHER_MAP_URL" default:"https://api.openweathermap.org"`
	HTTPTimeout int    `envconfig:"OPEN_WEATHER_MAP_TIMEOUT" default:"10"`
	RateLimit   int    `envconfig:"OPEN_WEATHER_MAP_RPS" default:"10"`
	RateBurst   int    `envconfig:"OPEN_WEATHER_MAP_BURST" default:"5"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

// Store selects where the city list is persisted: sqlite, redis or memory.
type Store struct {
	Driver     string `envconfig:"STORE_DRIVER" default:"sqlite"`
	Dialect    string `envconfig:"DB_DIALECT" default:"sqlite"`
	Source     string `envconfig:"DB_NAME" default:"dashboard.db"`
	StorageKey string `envconfig:"STORAGE_KEY" default:"wm:cities"`
}

type Redis struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DbType   int    `envconfig:"REDIS_DB_TYPE" default:"0"`
	LiveTime int    `envconfig:"REDIS_LIVE_TIME" default:"10"`
	// CacheEnabled puts a redis cache in front of current-conditions lookups.
	CacheEnabled bool `envconfig:"CACHE_ENABLED" default:"false"`
}

type RabbitMQ struct {
	Enabled bool   `envconfig:"RABBITMQ_ENABLED" default:"false"`
	Host    string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	Port    string `envconfig:"RABBITMQ_PORT" default:"5672"`
	User    string `envconfig:"RABBITMQ_USER" default:"guest"`
	Pass    string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
}

// Location is a fixed device position. Without it the sensor reports no capability.
type Location struct {
	Enabled bool    `envconfig:"LOCATION_ENABLED" default:"false"`
	Lat     float64 `envconfig:"LOCATION_LAT"`
	Lon     float64 `envconfig:"LOCATION_LON"`
}

type Config struct {
	OpenWeatherMap OpenWeatherMap
	Server         Server
	Breaker        Breaker
	Store          Store
	Redis          Redis
	RabbitMQ       RabbitMQ
	Location       Location

	ClockSpec string `envconfig:"CLOCK_SPEC" default:"@every 1m"`
	Timezone  string `envconfig:"DASHBOARD_TIMEZONE" default:"Local"`

	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	LogsPath     string `envconfig:"LOGS_PATH" default:"./log/weather-dashboard.log"`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH" default:"./log/openweathermap.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

// TimeLocation resolves Timezone, the zone in which "today" and clock labels are computed.
func (c *Config) TimeLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (r *Redis) Address() string {
	return r.Host + ":" + r.Port
}

func (r *RabbitMQ) Address() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.User, r.Pass, r.Host, r.Port)
}
