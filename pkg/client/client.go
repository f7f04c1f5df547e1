package pubmedsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 310 * time.Second

// Client is the PubMed search API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the Client.
type Option interface {
	apply(*Client)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*Client)

func (f optionFunc) apply(c *Client) { f(c) }

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(h *http.Client) Option {
	return optionFunc(func(c *Client) {
		c.httpClient = h
	})
}

// WithTimeout sets the per-request timeout.
// The default is generous because searches are not retried.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *Client) {
		c.httpClient.Timeout = d
	})
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o.apply(c)
	}
	return c
}

type searchRequest struct {
	Query string `json:"query"`
	Limit *int   `json:"limit,omitempty"`
}

// SearchOption configures a single search call.
type SearchOption func(*searchRequest)

// WithLimit sets the number of results to return (1 to 100, default 5).
// The value is sent as given; the server rejects values outside the range.
func WithLimit(n int) SearchOption {
	return func(r *searchRequest) {
		r.Limit = &n
	}
}

// Search runs a semantic search for the query text.
func (c *Client) Search(ctx context.Context, query string, opts ...SearchOption) (*SearchResponse, error) {
	req := searchRequest{Query: query}
	for _, o := range opts {
		o(&req)
	}

	var resp SearchResponse
	if err := c.post(ctx, "/search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health returns the detailed component health report.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var hs HealthStatus
	if err := c.get(ctx, "/health", &hs); err != nil {
		return nil, err
	}
	return &hs, nil
}

// Info returns the service identity from the root endpoint.
func (c *Client) Info(ctx context.Context) (*ServiceInfo, error) {
	var si ServiceInfo
	if err := c.get(ctx, "/", &si); err != nil {
		return nil, err
	}
	return &si, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("pubmedsearch: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("pubmedsearch: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("pubmedsearch: build request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pubmedsearch: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	// /health answers 503 with a valid report body when degraded.
	if resp.StatusCode >= http.StatusBadRequest && !isHealthReport(req, resp) {
		return parseAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("pubmedsearch: decode response: %w", err)
	}
	return nil
}

func isHealthReport(req *http.Request, resp *http.Response) bool {
	return req.URL.Path == "/health" && resp.StatusCode == http.StatusServiceUnavailable
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
		apiErr.Code = "unknown"
		apiErr.Message = resp.Status
	}
	return apiErr
}
