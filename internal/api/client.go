// Package api implements the REST client for the investment platform.
// Every call hits `<server>/api`, carries a bearer token when a session
// exists, and reports server-rejected requests with the server's own
// message text. An authorization failure on any call fires the configured
// unauthorized hook so the UI can drop the session globally.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const userAgent = "vaulterm/1.0"

// genericErr is shown when the server gives no usable message.
const genericErr = "request failed"

// APIError carries the HTTP status and the server-provided detail text.
// The detail is surfaced to the user verbatim.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("%s (status %d)", genericErr, e.Status)
}

// IsUnauthorized reports whether err is a 401 APIError.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// Config configures a Client.
type Config struct {
	// BaseURL is the server root, without the /api suffix.
	BaseURL string

	// Timeout bounds each request end to end. Zero means no timeout,
	// matching the original client's behavior.
	Timeout time.Duration

	// TokenSource returns the current bearer token, or "" when logged out.
	TokenSource func() string

	// OnUnauthorized runs whenever any response comes back 401. The hook is
	// global: the session is invalid no matter which call tripped it.
	OnUnauthorized func()
}

// Client issues JSON requests against the platform API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokenSource    func() string
	onUnauthorized func()
}

// New creates a Client from config. The BaseURL is normalized so both
// "https://host" and "https://host/" work.
func New(cfg Config) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/") + "/api",
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		tokenSource:    cfg.TokenSource,
		onUnauthorized: cfg.OnUnauthorized,
	}
}

// BaseURL returns the server root including the /api suffix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorBody is the shape the backend uses for rejections.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// do performs one JSON round trip. body and out may be nil. query may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &APIError{Status: resp.StatusCode, Detail: decodeDetail(resp.Body)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Detail: decodeDetail(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeDetail pulls the server message out of an error body, if any.
func decodeDetail(r io.Reader) string {
	var eb errorBody
	if err := json.NewDecoder(r).Decode(&eb); err != nil {
		return ""
	}
	if eb.Detail != "" {
		return eb.Detail
	}
	return eb.Message
}
