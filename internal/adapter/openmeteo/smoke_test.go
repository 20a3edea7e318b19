//go:build openmeteo

package openmeteo

import (
	"context"
	"testing"
	"time"

	"github.com/couchcryptid/forecast-web/internal/config"
	"github.com/couchcryptid/forecast-web/internal/domain"
	"github.com/couchcryptid/forecast-web/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real Open-Meteo APIs (no key required).
// Run with: go test -tags=openmeteo ./internal/adapter/openmeteo/ -v -count=1

func TestSmoke_Resolve(t *testing.T) {
	c := NewGeocodingClient(config.DefaultGeocodingURL, 10*time.Second, observability.NewMetricsForTesting(), discardLogger())

	loc, err := c.Resolve(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, "Paris", loc.Name)
	assert.Equal(t, "France", loc.Country)
	assert.InDelta(t, 48.85, loc.Latitude, 0.1)
	assert.InDelta(t, 2.35, loc.Longitude, 0.1)
}

func TestSmoke_Resolve_NotFound(t *testing.T) {
	c := NewGeocodingClient(config.DefaultGeocodingURL, 10*time.Second, observability.NewMetricsForTesting(), discardLogger())

	_, err := c.Resolve(context.Background(), "Qwxzvbnmplkj")
	require.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestSmoke_Fetch(t *testing.T) {
	c := NewForecastClient(config.DefaultForecastURL, 10*time.Second, observability.NewMetricsForTesting(), discardLogger())

	fc, err := c.Fetch(context.Background(), domain.Coordinates{Latitude: 32.0809, Longitude: 34.7806})
	require.NoError(t, err)

	assert.Equal(t, "Asia/Jerusalem", fc.Timezone)
	assert.Len(t, fc.Days, 7)
	for _, d := range fc.Days {
		assert.NotEmpty(t, d.Date)
		assert.NotEmpty(t, d.Summary)
	}
}
