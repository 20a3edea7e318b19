package openmeteo

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/forecast-web/internal/domain"
	"github.com/couchcryptid/forecast-web/internal/observability"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=32.08&longitude=34.78&daily=weathercode,temperature_2m_max,temperature_2m_min,precipitation_probability_max&timezone=auto

var dailyVars = []string{
	"weathercode",
	"temperature_2m_max",
	"temperature_2m_min",
	"precipitation_probability_max",
}

// ForecastClient implements domain.ForecastProvider using the Open-Meteo Forecast API.
type ForecastClient struct {
	client
}

// NewForecastClient creates a forecast client. timeout bounds each request.
func NewForecastClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *ForecastClient {
	return &ForecastClient{client: newClient("forecast", baseURL, timeout, metrics, logger)}
}

// Fetch returns the daily forecast for coords, or domain.ErrForecastUnavailable
// when the response has no daily time series.
func (c *ForecastClient) Fetch(ctx context.Context, coords domain.Coordinates) (domain.Forecast, error) {
	params := url.Values{
		"latitude":  {strconv.FormatFloat(coords.Latitude, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(coords.Longitude, 'f', -1, 64)},
		"daily":     {strings.Join(dailyVars, ",")},
		"timezone":  {"auto"},
	}

	var resp forecastResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return domain.Forecast{}, err
	}

	if resp.Daily == nil || len(resp.Daily.Time) == 0 {
		c.record(outcomeEmpty)
		return domain.Forecast{}, domain.ErrForecastUnavailable
	}
	c.record(outcomeSuccess)

	return domain.Forecast{
		Timezone: resp.Timezone,
		Days:     resp.Daily.days(),
	}, nil
}

// Open-Meteo forecast response types.

type forecastResponse struct {
	Timezone string     `json:"timezone"`
	Daily    *dailyData `json:"daily"`
}

// dailyData is column-oriented: every slice is aligned by index with Time.
// Elements are pointers because Open-Meteo emits null for missing values.
type dailyData struct {
	Time                        []string   `json:"time"`
	WeatherCode                 []*int     `json:"weathercode"`
	Temperature2mMax            []*float64 `json:"temperature_2m_max"`
	Temperature2mMin            []*float64 `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
}

// days pivots the columns into one DayForecast per entry of Time. Columns
// shorter than Time yield nil for the missing indices.
func (d *dailyData) days() []domain.DayForecast {
	days := make([]domain.DayForecast, len(d.Time))
	for i, date := range d.Time {
		days[i] = domain.NewDayForecast(
			date,
			at(d.Temperature2mMax, i),
			at(d.Temperature2mMin, i),
			at(d.PrecipitationProbabilityMax, i),
			at(d.WeatherCode, i),
		)
	}
	return days
}

func at[T any](s []*T, i int) *T {
	if i < len(s) {
		return s[i]
	}
	return nil
}
