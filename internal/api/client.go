// Package api is the REST client for the monitoring backend. It only moves
// data: health scoring, SLA windows and alert generation all happen server
// side, and every method returns exactly what the wire carries.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/errors"
)

// DefaultTimeout bounds a single request. There is no retry layer: for the
// polled endpoints the next tick is the retry.
const DefaultTimeout = 10 * time.Second

// Client talks to the monitoring backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL.
// A zero timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListHosts fetches the current snapshot of every monitored host.
func (c *Client) ListHosts(ctx context.Context) ([]HostSnapshot, error) {
	var hosts []HostSnapshot
	if err := c.do(ctx, http.MethodGet, "/hosts/list", nil, &hosts); err != nil {
		return nil, err
	}
	return hosts, nil
}

// CheckHost triggers an immediate probe of one host and returns the results.
func (c *Client) CheckHost(ctx context.Context, name string) (*CheckResponse, error) {
	var check CheckResponse
	if err := c.do(ctx, http.MethodPost, "/host/check/"+url.PathEscape(name), nil, &check); err != nil {
		return nil, err
	}
	return &check, nil
}

// History fetches the ordered check history for one host, most recent last.
func (c *Client) History(ctx context.Context, name string) ([]CheckRecord, error) {
	var resp historyResponse
	if err := c.do(ctx, http.MethodGet, "/host/history/"+url.PathEscape(name), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Checks, nil
}

// SLAChart fetches the SLA time series per probe type for one host.
func (c *Client) SLAChart(ctx context.Context, name string) (*SLASeries, error) {
	var series SLASeries
	if err := c.do(ctx, http.MethodGet, "/host/sla_chart/"+url.PathEscape(name), nil, &series); err != nil {
		return nil, err
	}
	return &series, nil
}

// Heatmap fetches the latency heatmap samples for one host.
func (c *Client) Heatmap(ctx context.Context, name string) ([]HeatmapCell, error) {
	var cells []HeatmapCell
	if err := c.do(ctx, http.MethodGet, "/host/heatmap/"+url.PathEscape(name), nil, &cells); err != nil {
		return nil, err
	}
	return cells, nil
}

// Alerts fetches the status-change alert feed.
func (c *Client) Alerts(ctx context.Context) ([]AlertEvent, error) {
	var alerts []AlertEvent
	if err := c.do(ctx, http.MethodGet, "/alerts/list", nil, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// CreateHost registers a new host with the backend.
func (c *Client) CreateHost(ctx context.Context, host HostCreate) error {
	return c.do(ctx, http.MethodPost, "/host/create", host, nil)
}

// UpdateHost sends a partial update for one host. Only the set fields of
// update are transmitted.
func (c *Client) UpdateHost(ctx context.Context, name string, update HostUpdate) error {
	return c.do(ctx, http.MethodPut, "/host/update/"+url.PathEscape(name), update, nil)
}

// DeleteHost removes a host from the backend.
func (c *Client) DeleteHost(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/host/delete/"+url.PathEscape(name), nil, nil)
}

// apiError is the structured error body the backend attaches to non-2xx
// responses.
type apiError struct {
	Detail string `json:"detail"`
}

// do performs one request. A non-nil body is JSON-encoded; a non-nil out has
// the response decoded into it. Non-2xx responses surface the body's detail
// field as the user-visible message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrDecode,
				"Couldn't encode the request body",
				"This is unexpected - please report this bug!")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTransport,
			"Couldn't build the request for "+path,
			"Check the api_base setting in your config")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTransport,
			fmt.Sprintf("Can't reach the monitoring backend at %s", c.baseURL),
			"Make sure the backend is running and api_base points at it")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.WrapWithCode(err, errors.ErrDecode,
				"Unexpected response shape from "+path,
				"The backend may be a different version than this client expects")
		}
	}

	return nil
}

// errorFromResponse turns a non-2xx response into a structured error,
// preferring the backend's detail message when the body carries one.
func (c *Client) errorFromResponse(resp *http.Response, path string) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body apiError
	if err := json.Unmarshal(data, &body); err == nil && body.Detail != "" {
		return errors.New(errors.ErrAPI, body.Detail, "")
	}

	return errors.New(errors.ErrAPI,
		fmt.Sprintf("Backend returned HTTP %d for %s", resp.StatusCode, path),
		"Check the backend logs for details")
}
