package forecast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/couchcryptid/forecast-web/internal/domain"
	"github.com/couchcryptid/forecast-web/internal/observability"
)

// Lookup outcomes recorded in metrics.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidInput    = "invalid_input"
	OutcomeNotFound        = "not_found"
	OutcomeUpstreamEmpty   = "upstream_empty"
	OutcomeUpstreamFailure = "upstream_failure"
)

// Report is the result of a city lookup.
type Report struct {
	Location domain.Location
	Forecast domain.Forecast
}

// Service resolves a city and fetches its daily forecast.
type Service struct {
	geocoder domain.Geocoder
	provider domain.ForecastProvider
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewService creates a Service from a geocoder and a forecast provider.
func NewService(geocoder domain.Geocoder, provider domain.ForecastProvider, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		geocoder: geocoder,
		provider: provider,
		logger:   logger.With("component", "forecast-service"),
		metrics:  metrics,
	}
}

// Lookup geocodes city and then fetches the forecast for the match. The two
// calls are sequential; the forecast is never requested if geocoding fails.
//
// Errors: domain.ErrEmptyCity, domain.ErrLocationNotFound, and
// domain.ErrForecastUnavailable (returned with Report.Location populated).
// Anything else is an upstream failure.
func (s *Service) Lookup(ctx context.Context, city string) (Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		s.count(OutcomeInvalidInput)
		return Report{}, domain.ErrEmptyCity
	}

	loc, err := s.geocoder.Resolve(ctx, city)
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			s.logger.Debug("no geocoding match", "city", city)
			s.count(OutcomeNotFound)
			return Report{}, err
		}
		s.count(OutcomeUpstreamFailure)
		return Report{}, fmt.Errorf("geocode %q: %w", city, err)
	}

	s.logger.Debug("geocoded city",
		"city", city,
		"location", loc.Label(),
		"latitude", loc.Latitude,
		"longitude", loc.Longitude,
	)

	report := Report{Location: loc}

	fc, err := s.provider.Fetch(ctx, loc.Coordinates())
	if err != nil {
		if errors.Is(err, domain.ErrForecastUnavailable) {
			s.logger.Warn("forecast response had no daily series",
				"location", loc.Label(),
				"latitude", loc.Latitude,
				"longitude", loc.Longitude,
			)
			s.count(OutcomeUpstreamEmpty)
			return report, err
		}
		s.count(OutcomeUpstreamFailure)
		return report, fmt.Errorf("fetch forecast for %s: %w", loc.Label(), err)
	}

	fc.Days = domain.LabelDays(fc.Days, fc.Timezone)
	report.Forecast = fc
	s.count(OutcomeSuccess)
	return report, nil
}

func (s *Service) count(outcome string) {
	s.metrics.Lookups.WithLabelValues(outcome).Inc()
}
