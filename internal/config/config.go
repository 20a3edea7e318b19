package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Open-Meteo endpoints used when no override is configured.
const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Upstream Open-Meteo configuration.
	GeocodingURL    string
	ForecastURL     string
	UpstreamTimeout time.Duration

	// DefaultCity pre-fills the search form on the landing page.
	DefaultCity string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	upstreamTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("UPSTREAM_TIMEOUT", "10s"))
	if err != nil || upstreamTimeout <= 0 {
		return nil, errors.New("invalid UPSTREAM_TIMEOUT")
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":3000"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		GeocodingURL:    sharedcfg.EnvOrDefault("GEOCODING_URL", DefaultGeocodingURL),
		ForecastURL:     sharedcfg.EnvOrDefault("FORECAST_URL", DefaultForecastURL),
		UpstreamTimeout: upstreamTimeout,

		DefaultCity: sharedcfg.EnvOrDefault("DEFAULT_CITY", "Tel Aviv"),
	}

	if err := validateURL("GEOCODING_URL", cfg.GeocodingURL); err != nil {
		return nil, err
	}
	if err := validateURL("FORECAST_URL", cfg.ForecastURL); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateURL(name, raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid %s: %q is not an absolute http(s) URL", name, raw)
	}
	return nil
}
