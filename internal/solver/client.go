package solver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the submission correlation id to the server.
const RequestIDHeader = "X-Request-Id"

// maxErrorBody bounds how much of a failure body is read for "detail".
const maxErrorBody = 64 << 10

// Client calls the /solve and /status endpoints of a mathduel server.
// No timeout is configured by default.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Client for the server rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server URL %q must use http or https", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the server root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Solve posts problem to the endpoint for variant v.
func (c *Client) Solve(ctx context.Context, v Variant, problem string) (*Result, error) {
	body, err := sonic.Marshal(Request{Problem: problem})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("solve", string(v)), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", v, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("variant", string(v)).Msg("solve request failed")
		return nil, &TransportError{Variant: v, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{
			Variant:    v,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Detail:     readDetail(resp.Body),
		}
		c.logger.Warn().
			Str("variant", string(v)).
			Int("status", resp.StatusCode).
			Str("detail", httpErr.Detail).
			Msg("solve request rejected")
		return nil, httpErr
	}

	var result Result
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &DecodeError{Variant: v, Err: err}
	}

	c.logger.Debug().
		Str("variant", string(v)).
		Str("execution_time", result.ExecutionTime.String()).
		Msg("solve request completed")
	return &result, nil
}

// Status fetches which variants the server has loaded.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("status"), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch status: %s", resp.Status)
	}

	var st Status
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&st); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	return &st, nil
}

func (c *Client) endpoint(parts ...string) string {
	return c.baseURL.JoinPath(parts...).String()
}

// readDetail extracts a string "detail" field from a failure body.
// Anything else (non-JSON, list details, empty) yields "".
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body errorBody
	if err := sonic.Unmarshal(raw, &body); err != nil {
		return ""
	}
	detail, _ := body.Detail.(string)
	return detail
}
