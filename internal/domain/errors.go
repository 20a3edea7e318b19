package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCity is returned for a blank or whitespace-only city name.
	ErrEmptyCity = errors.New("city name is empty")

	// ErrLocationNotFound is returned when geocoding yields no match.
	ErrLocationNotFound = errors.New("location not found")

	// ErrForecastUnavailable is returned when the forecast response has no
	// daily time series.
	ErrForecastUnavailable = errors.New("forecast response has no daily time series")
)

// UpstreamError is a non-2xx answer from an external API.
type UpstreamError struct {
	Service    string // "geocoding" or "forecast"
	StatusCode int
	Reason     string // provider-supplied reason, if the body had one
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s API error: status %d: %s", e.Service, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("%s API error: status %d", e.Service, e.StatusCode)
}

// Diagnostic returns operator-facing detail for err, preferring the body an
// upstream API sent over the error message.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	var upErr *UpstreamError
	if errors.As(err, &upErr) && upErr.Body != "" {
		return upErr.Body
	}
	return err.Error()
}
