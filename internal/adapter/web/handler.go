// Package web renders the city search page and forecast results.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/couchcryptid/forecast-web/internal/domain"
	"github.com/couchcryptid/forecast-web/internal/forecast"
	"github.com/go-chi/chi/v5"
)

// Page title shown in the browser tab and heading.
const Title = "7-Day Weather Forecast"

// User-facing messages. They never include error text.
const (
	MsgEmptyCity           = "Please enter a city name."
	MsgNotFound            = "Couldn't find that location. Try a different spelling or a larger city."
	MsgForecastUnavailable = "Weather service returned an unexpected response. Please try again."
	MsgUpstreamFailure     = "Something went wrong while contacting the API. Check the server console for details."
)

const (
	maxFormBytes    = 64 << 10
	requestIDHeader = "X-Request-ID"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Lookuper resolves a city to its forecast.
type Lookuper interface {
	Lookup(ctx context.Context, city string) (forecast.Report, error)
}

// RenderContext is the data passed to the page template.
type RenderContext struct {
	Title         string
	City          string
	LocationLabel string
	ForecastDays  []domain.DayForecast
	Error         string
}

// Handler serves the search form and forecast results.
type Handler struct {
	lookup      Lookuper
	defaultCity string
	tmpl        *template.Template
	logger      *slog.Logger
}

// NewHandler parses the embedded templates and returns a ready Handler.
func NewHandler(lookup Lookuper, defaultCity string, logger *slog.Logger) (*Handler, error) {
	tmpl, err := template.New("index.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{
		lookup:      lookup,
		defaultCity: defaultCity,
		tmpl:        tmpl,
		logger:      logger.With("component", "web"),
	}, nil
}

// Routes returns a router serving the page, the form target, and static assets.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.handleIndex)
	r.Post("/forecast", h.handleForecast)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Only fails if the embed directive above is changed.
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	return r
}

// CheckReadiness reports whether the page templates are loaded.
func (h *Handler) CheckReadiness(_ context.Context) error {
	if h.tmpl == nil {
		return errors.New("templates not loaded")
	}
	return nil
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, RenderContext{Title: Title, City: h.defaultCity})
}

func (h *Handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.logger.Debug("unreadable form", "error", err)
	}
	city := strings.TrimSpace(r.PostFormValue("city"))

	rc := RenderContext{Title: Title, City: city}

	report, err := h.lookup.Lookup(r.Context(), city)
	switch {
	case err == nil:
		rc.LocationLabel = report.Location.Label()
		rc.ForecastDays = report.Forecast.Days
		h.render(w, r, http.StatusOK, rc)
	case errors.Is(err, domain.ErrEmptyCity):
		rc.Error = MsgEmptyCity
		h.render(w, r, http.StatusBadRequest, rc)
	case errors.Is(err, domain.ErrLocationNotFound):
		rc.Error = MsgNotFound
		h.render(w, r, http.StatusNotFound, rc)
	case errors.Is(err, domain.ErrForecastUnavailable):
		rc.LocationLabel = report.Location.Label()
		rc.Error = MsgForecastUnavailable
		h.render(w, r, http.StatusBadGateway, rc)
	default:
		h.logger.Error("forecast lookup failed",
			"city", city,
			"error", err,
			"detail", domain.Diagnostic(err),
			"request_id", r.Header.Get(requestIDHeader),
		)
		rc.Error = MsgUpstreamFailure
		h.render(w, r, http.StatusInternalServerError, rc)
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, rc RenderContext) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", rc); err != nil {
		h.logger.Error("render page", "error", err, "request_id", r.Header.Get(requestIDHeader))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("write response", "error", err)
	}
}
