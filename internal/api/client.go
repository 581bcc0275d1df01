// ABOUTME: HTTP client core for the Telldemm backend admin API
// ABOUTME: Handles bearer credentials, JSON decoding, and error normalization

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxBodySize caps response bodies read into memory.
const maxBodySize = 10 << 20 // 10 MB

// TokenFunc extracts the bearer credential for a request from its context.
// Returning an empty string sends the request unauthenticated.
type TokenFunc func(ctx context.Context) string

// Client performs authenticated calls against the remote backend API.
// All list operations normalize the backend's heterogeneous response
// envelopes; a response shape that matches none of the known variants
// yields an empty collection, never an error.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   TokenFunc
	logger  *slog.Logger

	// onUnauthorized is invoked whenever any call receives HTTP 401,
	// before the error is returned to the caller.
	onUnauthorized func(ctx context.Context)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithUnauthorizedHook registers a callback invoked on every HTTP 401
// received from the backend, regardless of which operation failed.
func WithUnauthorizedHook(fn func(ctx context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates a Client for the given backend base URL. The token func
// supplies the per-request bearer credential; it may be nil for a
// client that only performs unauthenticated calls.
func New(baseURL string, timeout time.Duration, token TokenFunc, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		token:   token,
		logger:  slog.Default().With("component", "api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// adminURL builds a URL under the backend's /admin prefix.
func (c *Client) adminURL(path string, query url.Values) string {
	u := c.baseURL + "/admin" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// get performs an authenticated GET and returns the raw body.
func (c *Client) get(ctx context.Context, op, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", op, err)
	}
	return c.do(ctx, op, req)
}

// postJSON performs an authenticated POST with a JSON body and returns the raw body.
func (c *Client) postJSON(ctx context.Context, op, rawURL string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encoding payload: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(ctx, op, req)
}

// do executes the request with the bearer credential attached and maps
// non-2xx statuses to *FetchError. HTTP 401 additionally fires the
// unauthorized hook so the caller's session can be invalidated.
func (c *Client) do(ctx context.Context, op string, req *http.Request) ([]byte, error) {
	if c.token != nil {
		if token := c.token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%s: reading response: %w", op, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn("backend rejected credential", "op", op)
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    backendMessage(body),
		}
	}

	return body, nil
}

// backendMessage pulls a human-readable message out of an error body,
// falling back to empty when the body is not the {message} shape.
func backendMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}
