// Package weather implements the gateway to the OpenWeatherMap
// current-weather API: it issues the outbound call and maps the
// provider payload onto the service schema.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const baseURL = "https://api.openweathermap.org/data/2.5/weather"

// GatewayError reports a failed outbound call: transport errors,
// non-2xx provider statuses, and malformed or incomplete payloads.
// Status is 502 for upstream faults and 500 for local ones; the
// handler layer surfaces both as HTTP 500 to the API client.
type GatewayError struct {
	Status  int
	Message string
}

func (e *GatewayError) Error() string { return e.Message }

func errMissingField(field string) *GatewayError {
	return &GatewayError{
		Status:  http.StatusBadGateway,
		Message: fmt.Sprintf("provider response missing required field %q", field),
	}
}

// Client wraps an HTTP client configured for OpenWeatherMap API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string // overridable for testing
	tracer     trace.Tracer
}

// NewClient creates a Client with an explicit timeout instead of http.DefaultClient.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		tracer:  otel.GetTracerProvider().Tracer("weather-gateway"),
	}
}

// FetchWeather requests current weather for the given city. Every
// call issues a fresh outbound request; there is no caching. The
// context allows the caller to enforce cancellation or deadline on
// top of the client timeout.
func (c *Client) FetchWeather(ctx context.Context, city string) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "fetch-weather")
	defer span.End()
	span.SetAttributes(attribute.String("city", city))

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &GatewayError{
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("parse base url: %v", err),
		}
	}

	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &GatewayError{
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("create request: %v", err),
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, &GatewayError{
			Status:  http.StatusBadGateway,
			Message: fmt.Sprintf("execute request: %v", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		span.SetAttributes(attribute.Int("provider.status", resp.StatusCode))
		var apiErr APIError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return nil, &GatewayError{
				Status:  http.StatusBadGateway,
				Message: fmt.Sprintf("provider returned HTTP %d", resp.StatusCode),
			}
		}
		return nil, &GatewayError{
			Status:  http.StatusBadGateway,
			Message: fmt.Sprintf("provider returned HTTP %d: %s", resp.StatusCode, apiErr.Message),
		}
	}

	var payload providerPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.RecordError(err)
		return nil, &GatewayError{
			Status:  http.StatusBadGateway,
			Message: fmt.Sprintf("decode response: %v", err),
		}
	}

	out, err := payload.toResponse()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Float64("temperature_c", out.Temperature))
	return out, nil
}
