package domain

import "context"

// Geocoder resolves free-text place names.
type Geocoder interface {
	// Resolve returns the best match for name, or ErrLocationNotFound when the
	// provider answered successfully with no results.
	Resolve(ctx context.Context, name string) (Location, error)
}

// ForecastProvider fetches daily forecasts.
type ForecastProvider interface {
	// Fetch returns one DayForecast per day in the provider's time series, or
	// ErrForecastUnavailable when the response carries no time series.
	Fetch(ctx context.Context, coords Coordinates) (Forecast, error)
}
