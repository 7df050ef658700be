// Package api is the JSON client for the agriculture backend. The backend is
// opaque to the dashboard: responses are raw maps handed to the normalizer,
// and non-2xx bodies are surfaced verbatim so operators see exactly what the
// server said.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"krishi-dashboard/internal/common/config"
	apperrors "krishi-dashboard/internal/common/errors"
	"krishi-dashboard/internal/common/logger"
	"krishi-dashboard/internal/common/metrics"
)

// Client calls the agriculture backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

// NewClient builds a client from configuration.
func NewClient(cfg config.APIConfig, log logger.Logger) *Client {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		},
		log: log,
	}
}

// AlertRequest is the payload for composing an alert broadcast.
type AlertRequest struct {
	Type      string   `json:"type"`
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	Districts []string `json:"districts"`
	Priority  string   `json:"priority"`
}

// SchemeRequest is the payload for registering a scheme.
type SchemeRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Budget   string `json:"budget,omitempty"`
	Deadline string `json:"deadline,omitempty"`
}

// ReportRequest is the payload for queueing a report job.
type ReportRequest struct {
	Title     string            `json:"title"`
	Type      string            `json:"type"`
	DateRange map[string]string `json:"dateRange"`
}

// Farmers fetches the full farmer registry.
func (c *Client) Farmers(ctx context.Context) ([]map[string]interface{}, error) {
	var out []map[string]interface{}
	if err := c.getJSON(ctx, "/api/farmers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Farmer fetches one farmer by id.
func (c *Client) Farmer(ctx context.Context, id string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.getJSON(ctx, "/api/farmers/"+id, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PestReport fetches the locality -> outbreak count aggregation.
func (c *Client) PestReport(ctx context.Context) (map[string]int, error) {
	var out map[string]int
	if err := c.getJSON(ctx, "/api/pest-report", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAlert submits an alert broadcast and returns the created entity as
// the backend reported it.
func (c *Client) CreateAlert(ctx context.Context, req AlertRequest) (map[string]interface{}, error) {
	return c.postJSON(ctx, "/api/alerts", req)
}

// CreateScheme registers a new scheme.
func (c *Client) CreateScheme(ctx context.Context, req SchemeRequest) (map[string]interface{}, error) {
	return c.postJSON(ctx, "/api/schemes", req)
}

// CreateReport queues a report generation job.
func (c *Client) CreateReport(ctx context.Context, req ReportRequest) (map[string]interface{}, error) {
	return c.postJSON(ctx, "/api/reports", req)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewNetworkTransportError(path, fmt.Errorf("malformed response body: %w", err))
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) (map[string]interface{}, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.NewNetworkTransportError(path, fmt.Errorf("failed to marshal payload: %w", err))
	}
	body, err := c.do(ctx, http.MethodPost, path, jsonData)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, apperrors.NewNetworkTransportError(path, fmt.Errorf("malformed response body: %w", err))
		}
	}
	return out, nil
}

// do runs one request and applies the shared status policy: any 2xx is
// success; anything else becomes a NETWORK_FAILURE carrying the raw body.
func (c *Client) do(ctx context.Context, method, path string, jsonData []byte) ([]byte, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if jsonData != nil {
		reqBody = bytes.NewBuffer(jsonData)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, apperrors.NewNetworkTransportError(path, err)
	}
	if jsonData != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.BackendCallDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendCalls.WithLabelValues(path, "transport_error").Inc()
		c.log.Error("backend request failed", map[string]interface{}{
			"method":   method,
			"endpoint": path,
			"error":    err.Error(),
		})
		return nil, apperrors.NewNetworkTransportError(path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendCalls.WithLabelValues(path, "transport_error").Inc()
		return nil, apperrors.NewNetworkTransportError(path, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.BackendCalls.WithLabelValues(path, "http_error").Inc()
		c.log.Warn("backend returned error status", map[string]interface{}{
			"method":   method,
			"endpoint": path,
			"status":   resp.StatusCode,
		})
		return nil, apperrors.NewNetworkFailureError(path, resp.StatusCode, string(body))
	}

	metrics.BackendCalls.WithLabelValues(path, "success").Inc()
	return body, nil
}
