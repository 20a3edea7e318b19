package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/forecast-web/internal/domain"
	"github.com/couchcryptid/forecast-web/internal/observability"
)

// Upstream request outcomes recorded in metrics.
const (
	outcomeSuccess = "success"
	outcomeError   = "error"
	outcomeEmpty   = "empty"
)

// maxErrorBody caps how much of a non-2xx body is kept for logs.
const maxErrorBody = 4 << 10

// client is the HTTP transport shared by the geocoding and forecast clients.
type client struct {
	service    string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

func newClient(service, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) client {
	return client{
		service: service,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger.With("component", "openmeteo", "service", service),
	}
}

// get issues a GET to baseURL with params and decodes a 2xx JSON body into out.
// Non-2xx answers become *domain.UpstreamError.
func (c *client) get(ctx context.Context, params url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}
	q := u.Query()
	for k, v := range params {
		q[k] = v
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	c.metrics.UpstreamDuration.WithLabelValues(c.service).Observe(elapsed.Seconds())
	if err != nil {
		c.record(outcomeError)
		return fmt.Errorf("%s request: %w", c.service, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("open-meteo response", "status", resp.StatusCode, "duration", elapsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.record(outcomeError)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newUpstreamError(c.service, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.record(outcomeError)
		return fmt.Errorf("decode %s response: %w", c.service, err)
	}
	return nil
}

func (c *client) record(outcome string) {
	c.metrics.UpstreamRequests.WithLabelValues(c.service, outcome).Inc()
}

// errorResponse is the body Open-Meteo sends with 4xx/5xx statuses.
type errorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func newUpstreamError(service string, status int, body []byte) *domain.UpstreamError {
	upErr := &domain.UpstreamError{
		Service:    service,
		StatusCode: status,
		Body:       string(body),
	}
	var er errorResponse
	if json.Unmarshal(body, &er) == nil {
		upErr.Reason = er.Reason
	}
	return upErr
}
