// Package upstream talks to the external prediction service. The service is
// opaque: the client forwards the question payload with the projected
// credential headers and hands the raw prediction JSON back untouched.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/augurhq/augur/internal/models"
)

// Client is a rate-limited HTTP client for the prediction service
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

// New creates a client for the prediction service at baseURL. A positive
// requestsPerMinute caps outbound predict calls; 0 disables the limiter.
func New(baseURL string, requestsPerMinute int) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("User-Agent", "augur/1.0")

	var limiter *rate.Limiter
	if requestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute)
	}

	return &Client{
		http:    client,
		limiter: limiter,
	}
}

// Predict forwards a prediction request and returns the raw result payload.
// Non-2xx responses become a single error carrying the service's message,
// sourced from the body's message or detail field when parseable, the HTTP
// status text otherwise.
func (c *Client) Predict(ctx context.Context, req *models.PredictRequest, headers map[string]string) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter interrupted: %w", err)
		}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetBody(req).
		Post("/api/v1/predict")
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}

	if resp.IsError() {
		return nil, errors.New(errorMessage(resp))
	}

	return json.RawMessage(resp.Body()), nil
}

// Health probes the service liveness endpoint
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("health check failed: %s", errorMessage(resp))
	}
	return nil
}

// errorMessage extracts a human-readable message from an error response
func errorMessage(resp *resty.Response) string {
	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if msg, ok := body["message"].(string); ok && msg != "" {
			return msg
		}
		if detail, ok := body["detail"].(string); ok && detail != "" {
			return detail
		}
	}
	return resp.Status()
}
