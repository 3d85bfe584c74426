// Package apiclient wraps outbound requests to the booking backend. It
// attaches the bearer credential, enforces the fixed request timeout,
// normalizes every failure into an APIError, and reacts to 401 responses
// through a hook so the session layer can tear itself down in one place.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds every request; there is no retry anywhere in the
// client, a timed-out request is reported and retried only by the user.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer credential. An empty string
// means the request goes out unauthenticated.
type TokenSource func() string

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the fixed request timeout. Defaults to 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithTokenSource installs the supplier for the Authorization header.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithUnauthorizedHook installs the callback fired on every 401 response,
// before the normalized error is returned to the caller.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// WithHTTPClient replaces the underlying transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches path and decodes the JSON response into out. fallback is
// the operation's default error message when the server body has none.
func (c *Client) Get(ctx context.Context, path string, out any, fallback string) error {
	return c.do(ctx, http.MethodGet, path, nil, out, fallback)
}

func (c *Client) Post(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPost, path, body, out, fallback)
}

func (c *Client) Put(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPut, path, body, out, fallback)
}

func (c *Client) Delete(ctx context.Context, path string, fallback string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, fallback)
}

// Health probes the backend's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.Get(ctx, "/health", nil, "Backend health check failed")
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := transportError(err)
		logRequest(method, req.URL.String(), 0, time.Since(start), apiErr)
		return apiErr
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		apiErr := c.unauthorized(resp)
		logRequest(method, req.URL.String(), resp.StatusCode, time.Since(start), apiErr)
		return apiErr
	}

	if resp.StatusCode >= 400 {
		var body errorBody
		_ = json.NewDecoder(resp.Body).Decode(&body)
		apiErr := serverError(resp.StatusCode, body, fallback)
		logRequest(method, req.URL.String(), resp.StatusCode, time.Since(start), apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			apiErr := &APIError{Message: InvalidFormatErrorMessage, Status: resp.StatusCode}
			logRequest(method, req.URL.String(), resp.StatusCode, time.Since(start), apiErr)
			return apiErr
		}
	}

	logRequest(method, req.URL.String(), resp.StatusCode, time.Since(start), nil)
	return nil
}

// unauthorized normalizes a 401 and fires the teardown hook exactly once
// per response. Every 401 is treated the same no matter which operation
// triggered it.
func (c *Client) unauthorized(resp *http.Response) *APIError {
	var body errorBody
	_ = json.NewDecoder(resp.Body).Decode(&body)
	apiErr := serverError(http.StatusUnauthorized, body, UnauthorizedMessage)
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	return apiErr
}

func transportError(err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutError()
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return timeoutError()
	}
	return networkError()
}

func logRequest(method, url string, status int, latency time.Duration, apiErr *APIError) {
	payload := struct {
		Time      string `json:"time"`
		Method    string `json:"method"`
		URL       string `json:"url"`
		Status    int    `json:"status,omitempty"`
		LatencyMS int64  `json:"latency_ms"`
		Error     string `json:"error,omitempty"`
	}{
		Time:      time.Now().Format(time.RFC3339),
		Method:    method,
		URL:       url,
		Status:    status,
		LatencyMS: latency.Milliseconds(),
	}
	if apiErr != nil {
		payload.Error = apiErr.Message
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return
	}
	log.Println(string(buf))
}
