package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/weather-dashboard/internal/app"
	"github.com/Nazarious-ucu/weather-dashboard/internal/config"
	metricsSvc "github.com/Nazarious-ucu/weather-dashboard/internal/services/metrics"
	"github.com/Nazarious-ucu/weather-dashboard/pkg/logger"
)

const (
	serviceName      = "weather-dashboard"
	metricsNamespace = "weather_dashboard"
)

// @title Weather Dashboard API
// @version 1.0
// @description Tracks current weather and a five day forecast for a list of cities
// @host localhost:8080
// @BasePath /api
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLoggerWithLevel(cfg.LogsPath, serviceName, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		log.Panicf("failed to initialize logger: %v", err)
	}

	application := app.New(*cfg, l, metricsSvc.NewMetrics(metricsNamespace))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		l.Fatal().Err(err).Msg("application failed")
	}
}
