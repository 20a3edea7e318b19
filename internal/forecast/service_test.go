package forecast_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/forecast-web/internal/domain"
	"github.com/couchcryptid/forecast-web/internal/forecast"
	"github.com/couchcryptid/forecast-web/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockGeocoder struct {
	location domain.Location
	err      error
	calls    int
	lastName string
}

func (m *mockGeocoder) Resolve(_ context.Context, name string) (domain.Location, error) {
	m.calls++
	m.lastName = name
	return m.location, m.err
}

type mockProvider struct {
	forecast   domain.Forecast
	err        error
	calls      int
	lastCoords domain.Coordinates
}

func (m *mockProvider) Fetch(_ context.Context, coords domain.Coordinates) (domain.Forecast, error) {
	m.calls++
	m.lastCoords = coords
	return m.forecast, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var paris = domain.Location{Name: "Paris", Region: "Île-de-France", Country: "France", Latitude: 48.85341, Longitude: 2.3488}

func threeDays() domain.Forecast {
	return domain.Forecast{
		Timezone: "Europe/Paris",
		Days: []domain.DayForecast{
			{Date: "2024-04-26", Summary: "Clear sky"},
			{Date: "2024-04-27", Summary: "Overcast"},
			{Date: "2024-04-28", Summary: "Fog"},
		},
	}
}

func lookups(m *observability.Metrics, outcome string) float64 {
	return testutil.ToFloat64(m.Lookups.WithLabelValues(outcome))
}

// --- tests ---

func TestService_Lookup_Success(t *testing.T) {
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2024, 4, 26, 9, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { domain.SetClock(nil) })

	geo := &mockGeocoder{location: paris}
	prov := &mockProvider{forecast: threeDays()}
	metrics := observability.NewMetricsForTesting()
	svc := forecast.NewService(geo, prov, discardLogger(), metrics)

	report, err := svc.Lookup(context.Background(), "  Paris ")
	require.NoError(t, err)

	assert.Equal(t, "Paris", geo.lastName, "city is trimmed before geocoding")
	assert.Equal(t, domain.Coordinates{Latitude: 48.85341, Longitude: 2.3488}, prov.lastCoords)
	assert.Equal(t, paris, report.Location)
	require.Len(t, report.Forecast.Days, 3)
	assert.Equal(t, "2024-04-26", report.Forecast.Days[0].Date)
	assert.Equal(t, "2024-04-28", report.Forecast.Days[2].Date)
	assert.Equal(t, "Today", report.Forecast.Days[0].Label)
	assert.Equal(t, "Tomorrow", report.Forecast.Days[1].Label)
	assert.Equal(t, "Sun", report.Forecast.Days[2].Label)
	assert.InDelta(t, 1, lookups(metrics, forecast.OutcomeSuccess), 0)
}

func TestService_Lookup_EmptyCity(t *testing.T) {
	for _, city := range []string{"", "   ", "\t\n"} {
		geo := &mockGeocoder{location: paris}
		prov := &mockProvider{forecast: threeDays()}
		metrics := observability.NewMetricsForTesting()
		svc := forecast.NewService(geo, prov, discardLogger(), metrics)

		_, err := svc.Lookup(context.Background(), city)
		require.ErrorIs(t, err, domain.ErrEmptyCity)
		assert.Zero(t, geo.calls, "no outbound call for %q", city)
		assert.Zero(t, prov.calls)
		assert.InDelta(t, 1, lookups(metrics, forecast.OutcomeInvalidInput), 0)
	}
}

func TestService_Lookup_NotFoundSkipsForecast(t *testing.T) {
	geo := &mockGeocoder{err: domain.ErrLocationNotFound}
	prov := &mockProvider{forecast: threeDays()}
	metrics := observability.NewMetricsForTesting()
	svc := forecast.NewService(geo, prov, discardLogger(), metrics)

	report, err := svc.Lookup(context.Background(), "Xyzzyville")
	require.ErrorIs(t, err, domain.ErrLocationNotFound)
	assert.Equal(t, forecast.Report{}, report)
	assert.Zero(t, prov.calls)
	assert.InDelta(t, 1, lookups(metrics, forecast.OutcomeNotFound), 0)
}

func TestService_Lookup_GeocoderFailure(t *testing.T) {
	geo := &mockGeocoder{err: errors.New("dial tcp: i/o timeout")}
	prov := &mockProvider{}
	metrics := observability.NewMetricsForTesting()
	svc := forecast.NewService(geo, prov, discardLogger(), metrics)

	_, err := svc.Lookup(context.Background(), "Paris")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrLocationNotFound)
	assert.Contains(t, err.Error(), "i/o timeout")
	assert.Zero(t, prov.calls)
	assert.InDelta(t, 1, lookups(metrics, forecast.OutcomeUpstreamFailure), 0)
}

func TestService_Lookup_ForecastUnavailableKeepsLocation(t *testing.T) {
	geo := &mockGeocoder{location: paris}
	prov := &mockProvider{err: domain.ErrForecastUnavailable}
	metrics := observability.NewMetricsForTesting()
	svc := forecast.NewService(geo, prov, discardLogger(), metrics)

	report, err := svc.Lookup(context.Background(), "Paris")
	require.ErrorIs(t, err, domain.ErrForecastUnavailable)
	assert.Equal(t, paris, report.Location)
	assert.Empty(t, report.Forecast.Days)
	assert.InDelta(t, 1, lookups(metrics, forecast.OutcomeUpstreamEmpty), 0)
}

func TestService_Lookup_ForecastFailureWrapsUpstreamError(t *testing.T) {
	upErr := &domain.UpstreamError{Service: "forecast", StatusCode: 500, Body: `{"error":true,"reason":"boom"}`}
	geo := &mockGeocoder{location: paris}
	prov := &mockProvider{err: upErr}
	metrics := observability.NewMetricsForTesting()
	svc := forecast.NewService(geo, prov, discardLogger(), metrics)

	_, err := svc.Lookup(context.Background(), "Paris")
	require.Error(t, err)

	var got *domain.UpstreamError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, upErr, got)
	assert.Equal(t, `{"error":true,"reason":"boom"}`, domain.Diagnostic(err))
	assert.InDelta(t, 1, lookups(metrics, forecast.OutcomeUpstreamFailure), 0)
}
