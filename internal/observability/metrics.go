package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the forecast front-end.
type Metrics struct {
	// Inbound HTTP metrics.
	HTTPRequests        *prometheus.CounterVec   // labels: route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: route

	// Lookup outcomes: success, invalid_input, not_found, upstream_empty, upstream_failure.
	Lookups *prometheus.CounterVec

	// Open-Meteo metrics.
	UpstreamRequests *prometheus.CounterVec   // labels: service={geocoding,forecast}, outcome={success,error,empty}
	UpstreamDuration *prometheus.HistogramVec // labels: service
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.Lookups,
		m.UpstreamRequests,
		m.UpstreamDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forecast_web",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "forecast_web",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route pattern.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"route"}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forecast_web",
			Name:      "lookups_total",
			Help:      "City forecast lookups by outcome.",
		}, []string{"outcome"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forecast_web",
			Name:      "upstream_requests_total",
			Help:      "Open-Meteo API requests by service and outcome.",
		}, []string{"service", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "forecast_web",
			Name:      "upstream_request_duration_seconds",
			Help:      "Open-Meteo API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"service"}),
	}
}
