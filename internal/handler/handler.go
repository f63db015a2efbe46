// Package handler implements the HTTP layer of the Weather API.
//
// Routes:
//
//	POST /weather — validate a city name and return current weather
//	GET  /        — welcome message
//	GET  /health  — liveness check
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"

	"github.com/weather-api/internal/validation"
	"github.com/weather-api/internal/weather"
)

// ---------- Request / response types ----------

// WeatherRequest is the JSON body for POST /weather.
type WeatherRequest struct {
	City string `json:"city"`
}

// ErrorResponse is the standard error reply. Violations is set only
// for validation failures.
type ErrorResponse struct {
	Error      string                 `json:"error"`
	Violations []validation.Violation `json:"violations,omitempty"`
}

// ---------- Handler ----------

// Fetcher retrieves current weather for a validated city name.
// *weather.Client satisfies it.
type Fetcher interface {
	FetchWeather(ctx context.Context, city string) (*weather.Response, error)
}

// Handler holds the gateway dependency and provides the routes.
type Handler struct {
	fetcher Fetcher
}

// New creates a Handler backed by the given gateway.
func New(f Fetcher) *Handler {
	return &Handler{fetcher: f}
}

// Routes returns the service router with middleware applied.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)

	r.Get("/", h.Welcome)
	r.Get("/health", h.Health)
	r.Post("/weather", h.GetWeather)

	return r
}

// ---------- POST /weather ----------

// GetWeather accepts JSON {"city":"..."}, validates the name and
// proxies the provider's current weather. Validation failures reply
// 422 with per-field detail; gateway failures reply 500 with the
// underlying cause.
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := otel.Tracer("weather-handlers").Start(ctx, "handle-weather-request")
	defer span.End()

	var req WeatherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	city, err := validation.City(req.City)
	if err != nil {
		// Client fault, not a server one: reply 422, don't log.
		var verr *validation.Error
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Error:      "invalid request",
				Violations: verr.Violations,
			})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}
	span.SetAttributes(attribute.String("city", city))

	resp, err := h.fetcher.FetchWeather(ctx, city)
	if err != nil {
		span.RecordError(err)
		log.Printf("[gateway] fetch failed for %q: %v", city, err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Error fetching weather data: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ---------- GET / ----------

// Welcome is the root liveness/welcome message.
func (h *Handler) Welcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Weather API"})
}

// ---------- GET /health ----------

// Health is a minimal health check for probes.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---------- Utility ----------

// writeJSON serializes payload and sends it with the right Content-Type.
func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
