package peer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client performs single-attempt JSON calls against the sibling service.
// Every failure mode -- connection refused, timeout, non-2xx status,
// undecodable body -- collapses into a single false outcome. The client
// never distinguishes between them; callers decide policy (compensate,
// degrade to a default, or drop a filter term) from that one bit.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a peer client for the service at baseURL
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Call issues one request with no retries. It returns true only on a 2xx
// response whose body decoded into result (when result is non-nil).
func (c *Client) Call(ctx context.Context, method, path string, body, result any) bool {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.logger.Warn("peer call failed to marshal request",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			return false
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return false
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("peer call failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("peer call returned error status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return false
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			c.logger.Warn("peer call returned undecodable body",
				slog.String("method", method),
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			return false
		}
	}

	return true
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, result any) bool {
	return c.Call(ctx, http.MethodGet, path, nil, result)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body, result any) bool {
	return c.Call(ctx, http.MethodPost, path, body, result)
}
