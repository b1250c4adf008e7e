package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-now/internal/weather/providers"
)

type AppConfig struct {
	Port string

	// HTTPTimeout bounds each upstream call; the search itself has no deadline.
	HTTPTimeout time.Duration

	GeocodingURL string
	ForecastURL  string

	// DefaultQuery is searched once when the widget is activated.
	DefaultQuery string

	// RefreshInterval re-runs the current search periodically (0 = disabled).
	RefreshInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.GeocodingURL = getenvDefault("GEOCODING_URL", providers.DefaultGeocodingURL)
	cfg.ForecastURL = getenvDefault("FORECAST_URL", providers.DefaultForecastURL)
	cfg.DefaultQuery = getenvDefault("DEFAULT_QUERY", "London")

	interval, err := time.ParseDuration(getenvDefault("REFRESH_INTERVAL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	if interval < 0 {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: must not be negative")
	}
	cfg.RefreshInterval = interval

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
