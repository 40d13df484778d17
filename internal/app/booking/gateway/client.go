// Package gateway is the HTTP+JSON client for the language school API. It
// implements the catalog and order contracts on top of the remote endpoints.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// RequestIDHeader carries a fresh UUID on every outgoing request.
const RequestIDHeader = "X-Request-ID"

const (
	defaultTimeout = 10 * time.Second
	defaultBackoff = 200 * time.Millisecond
	maxErrorBody   = 4 << 10
)

// Client talks to the school API.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	retries    uint64
	backoff    time.Duration
	loc        *time.Location
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetries sets how many times idempotent requests are retried and the
// initial exponential backoff between attempts.
func WithRetries(attempts uint64, backoff time.Duration) Option {
	return func(c *Client) {
		c.retries = attempts
		if backoff > 0 {
			c.backoff = backoff
		}
	}
}

// WithLocation sets the timezone zone-less dates are read in.
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api base url must be absolute, got %q", baseURL)
	}

	c := &Client{
		baseURL:    u,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		backoff:    defaultBackoff,
		loc:        time.Local,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close releases idle connections held by the underlying http.Client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// do sends one request and decodes the JSON response into out (if non-nil).
// GET, PUT and DELETE are retried on transport errors and 5xx responses;
// POST is sent once. An undecodable success response is never retried.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	attempt := func(ctx context.Context) error {
		err := c.send(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.Temporary() {
			return err
		}
		if errors.Is(err, ErrMalformedResponse) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
		return retry.RetryableError(err)
	}

	if method == http.MethodPost || c.retries == 0 {
		return c.send(ctx, method, path, payload, out)
	}

	backoff := retry.WithMaxRetries(c.retries, retry.NewExponential(c.backoff))
	return retry.Do(ctx, backoff, attempt)
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, out any) error {
	u := c.baseURL.JoinPath(path)
	q := u.Query()
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	u.RawQuery = q.Encode()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return &RequestError{Method: method, Path: path, Err: err}
	}
	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("school api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return &RequestError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("school api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Method: method, Path: path, Err: fmt.Errorf("%w: %w", ErrMalformedResponse, err)}
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body errorDTO
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = fmt.Sprintf("status %d", resp.StatusCode)
	}
	return apiErr
}
