package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"hrtrack/internal/domain"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Options tunes the transport. The zero value sends requests unpaced and
// never retries.
type Options struct {
	HTTP *http.Client

	// RateLimit is the sustained request rate per second; 0 disables pacing.
	RateLimit float64
	Burst     int

	// Retries is how many times a 429 response is retried. Other statuses
	// are never retried.
	Retries   int
	BaseDelay time.Duration
	MaxDelay  time.Duration

	Logger *slog.Logger
}

// Client is the shared JSON-over-HTTP transport for every data source.
type Client struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
	retries int
	base0   time.Duration
	maxWait time.Duration
	logger  *slog.Logger

	mu    sync.RWMutex
	token string
}

// New returns a Client for the backend at base.
func New(base string, opts Options) *Client {
	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = time.Second
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = 30 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		base:    strings.TrimRight(base, "/"),
		http:    httpClient,
		limiter: limiter,
		retries: opts.Retries,
		base0:   opts.BaseDelay,
		maxWait: opts.MaxDelay,
		logger:  logger,
	}
}

// BaseURL returns the backend root this client talks to.
func (c *Client) BaseURL() string { return c.base }

// SetToken sets the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

var _ domain.TokenHolder = (*Client)(nil)

// StatusError reports a non-2xx response. It unwraps to
// domain.ErrRequestFailed.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %s", strings.ToLower(e.Method), e.Path, e.Status)
}

func (e *StatusError) Unwrap() error { return domain.ErrRequestFailed }

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(http.MethodGet, path, body, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrRequestFailed, path, err)
	}
	body, err := c.do(ctx, http.MethodPost, path, nil, buf.Bytes())
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(http.MethodPost, path, body, out)
}

func (c *Client) getBytes(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func decode(method, path string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %w", domain.ErrRequestFailed, strings.ToLower(method), path, err)
	}
	return nil
}

// do sends one logical request, retrying 429 responses up to c.retries
// times, and returns the full response body of a 2xx answer.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	requestID := uuid.NewString()
	logger := c.logger.With("request_id", requestID, "method", method, "path", path)

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt)
			logger.Debug("retrying request", "attempt", attempt+1, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrRequestFailed, strings.ToLower(method), path, ctx.Err())
			case <-time.After(delay):
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrRequestFailed, strings.ToLower(method), path, err)
		}

		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, body)
		if err != nil {
			return nil, fmt.Errorf("%w: build %s %s: %w", domain.ErrRequestFailed, strings.ToLower(method), path, err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set(RequestIDHeader, requestID)
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		start := time.Now()
		resp, err := c.http.Do(req)
		if err != nil {
			logger.Debug("request failed", "error", err)
			return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrRequestFailed, strings.ToLower(method), path, err)
		}
		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		logger.Debug("request finished", "status", resp.StatusCode, "bytes", len(data), "duration", time.Since(start))

		switch {
		case resp.StatusCode/100 == 2:
			if readErr != nil {
				return nil, fmt.Errorf("%w: read %s %s: %w", domain.ErrRequestFailed, strings.ToLower(method), path, readErr)
			}
			return data, nil
		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = &StatusError{Method: method, Path: path, Code: resp.StatusCode, Status: resp.Status}
		default:
			return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode, Status: resp.Status}
		}
	}
	return nil, lastErr
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.base0 << (attempt - 1)
	if d <= 0 || d > c.maxWait {
		return c.maxWait
	}
	return d
}

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

func idQuery(id domain.ID) url.Values {
	return url.Values{"id": []string{id.String()}}
}
