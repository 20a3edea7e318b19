package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/forecast-web/internal/adapter/httpadapter"
	"github.com/couchcryptid/forecast-web/internal/adapter/openmeteo"
	"github.com/couchcryptid/forecast-web/internal/adapter/web"
	"github.com/couchcryptid/forecast-web/internal/config"
	"github.com/couchcryptid/forecast-web/internal/forecast"
	"github.com/couchcryptid/forecast-web/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	geocoder := openmeteo.NewGeocodingClient(cfg.GeocodingURL, cfg.UpstreamTimeout, metrics, logger)
	provider := openmeteo.NewForecastClient(cfg.ForecastURL, cfg.UpstreamTimeout, metrics, logger)
	logger.Info("open-meteo clients configured",
		"geocoding_url", cfg.GeocodingURL,
		"forecast_url", cfg.ForecastURL,
		"timeout", cfg.UpstreamTimeout,
	)

	svc := forecast.NewService(geocoder, provider, logger, metrics)

	pages, err := web.NewHandler(svc, cfg.DefaultCity, logger)
	if err != nil {
		logger.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, pages.Routes(), pages, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
