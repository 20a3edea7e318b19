package openmeteo

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/couchcryptid/forecast-web/internal/domain"
	"github.com/couchcryptid/forecast-web/internal/observability"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Paris&count=1&language=en&format=json

// GeocodingClient implements domain.Geocoder using the Open-Meteo Geocoding API.
type GeocodingClient struct {
	client
}

// NewGeocodingClient creates a geocoding client. timeout bounds each request.
func NewGeocodingClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *GeocodingClient {
	return &GeocodingClient{client: newClient("geocoding", baseURL, timeout, metrics, logger)}
}

// Resolve returns the first match for name, or domain.ErrLocationNotFound.
func (c *GeocodingClient) Resolve(ctx context.Context, name string) (domain.Location, error) {
	params := url.Values{
		"name":     {name},
		"count":    {"1"},
		"language": {"en"},
		"format":   {"json"},
	}

	var resp geocodingResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return domain.Location{}, err
	}

	if len(resp.Results) == 0 {
		c.record(outcomeEmpty)
		return domain.Location{}, domain.ErrLocationNotFound
	}
	c.record(outcomeSuccess)

	r := resp.Results[0]
	return domain.Location{
		Name:      r.Name,
		Region:    r.Admin1,
		Country:   r.Country,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}, nil
}

// Open-Meteo geocoding response types.

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	Name      string  `json:"name"`
	Admin1    string  `json:"admin1"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
