// Package transport is the single HTTP-calling primitive of the dashboard.
// Every upstream call goes through Client.Request, and every failure — no
// response, non-2xx status, unparseable body — is normalized into one
// APIError shape before it reaches a gateway.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/naiconmartins/autoflex-production-control/internal/api/metrics"
)

// Doer abstracts *http.Client so tests can substitute the network.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues JSON requests against the inventory API. Stateless per call;
// safe for concurrent use.
type Client struct {
	baseURL string
	http    Doer
	log     zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithDoer replaces the underlying HTTP client.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// NewClient builds a Client for the given base URL. The URL comes from
// configuration and must be set: an empty value is a startup error, not
// something to discover on the first request.
func NewClient(baseURL string, log zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("transport: API base URL is not set")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Request performs one call and decodes the JSON response into out (skipped
// when out is nil, e.g. for deletes). A bearer token is attached when
// non-empty. On any failure it returns an *APIError; it never returns a raw
// *url.Error or decoding error to the caller.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any, token string, out any) error {
	url := c.baseURL + ensureLeadingSlash(endpoint)

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &APIError{Status: 0, Message: fmt.Sprintf("encode request body: %v", err)}
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return &APIError{Status: 0, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	// Every call must reflect current server state.
	req.Header.Set("Cache-Control", "no-store")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "network_error").Inc()
		c.log.Warn().Err(err).Str("method", method).Str("url", url).Msg("upstream call failed")
		return &APIError{Status: 0, Message: "network error while calling API"}
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(method, statusClass(resp.StatusCode)).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	data, raw := readBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(data, resp.StatusCode),
			Data:    data,
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Status: 0, Message: fmt.Sprintf("decode response body: %v", err)}
	}
	return nil
}

// readBody parses the response body: JSON when the content type says so,
// otherwise raw text. A parse failure yields nil data, never an error — the
// status code alone decides success.
func readBody(resp *http.Response) (any, []byte) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil
	}
	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return string(raw), nil
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, nil
	}
	return data, raw
}

// errorMessage pulls "message" or "error" out of an error body, falling back
// to a generic line carrying the status code.
func errorMessage(data any, status int) string {
	if obj, ok := data.(map[string]any); ok {
		if msg, ok := obj["message"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := obj["error"].(string); ok && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("request failed (%d)", status)
}

func ensureLeadingSlash(endpoint string) string {
	if strings.HasPrefix(endpoint, "/") {
		return endpoint
	}
	return "/" + endpoint
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
