// Package fetch provides the outbound HTTP client used for all provider
// calls: bounded retry with a flat backoff and an independent timeout per
// attempt.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/streamhub/streamhub/internal/metrics"
)

// UpstreamError is returned once every attempt against an upstream URL has
// been exhausted. It wraps the error from the final attempt.
type UpstreamError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Options configures a Client. All knobs are explicit so call sites don't
// scatter their own literals.
type Options struct {
	Attempts int           // total attempts per call, minimum 1
	Backoff  time.Duration // flat delay between attempts
	Timeout  time.Duration // per-attempt timeout
}

// Client issues GET requests with bounded retry.
type Client struct {
	httpClient *http.Client
	opts       Options
	log        *slog.Logger
	metrics    *metrics.Metrics
}

// New creates a Client. The underlying http.Client carries no global timeout;
// each attempt runs under its own deadline derived from the caller's context.
func New(opts Options, log *slog.Logger, m *metrics.Metrics) *Client {
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 16,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		opts:    opts,
		log:     log,
		metrics: m,
	}
}

// GetJSON fetches url and decodes the JSON body into v. It makes up to
// Attempts tries; a transport error, a non-2xx status or an undecodable body
// all count as a failed attempt. The error after the final attempt is an
// *UpstreamError.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	var lastErr error
	for attempt := 1; attempt <= c.opts.Attempts; attempt++ {
		lastErr = c.tryJSON(ctx, url, v)
		if lastErr == nil {
			c.metrics.FetchAttempt("ok")
			return nil
		}
		c.metrics.FetchAttempt("error")
		c.log.Warn("fetch attempt failed",
			"url", url,
			"attempt", attempt,
			"of", c.opts.Attempts,
			"error", lastErr,
		)
		if attempt == c.opts.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return &UpstreamError{URL: url, Attempts: attempt, Err: ctx.Err()}
		case <-time.After(c.opts.Backoff):
		}
	}
	return &UpstreamError{URL: url, Attempts: c.opts.Attempts, Err: lastErr}
}

func (c *Client) tryJSON(ctx context.Context, url string, v any) error {
	attemptCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("upstream status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Get performs a single, unretried GET and returns the raw response for
// streaming. The caller must close the body. Non-200 statuses are returned
// as an error with the body already closed.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		c.metrics.FetchAttempt("error")
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		cancel()
		c.metrics.FetchAttempt("error")
		return nil, fmt.Errorf("upstream status %s", resp.Status)
	}
	c.metrics.FetchAttempt("ok")
	resp.Body = &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// cancelReadCloser releases the attempt context when the caller closes the
// streamed body, so the timeout doesn't fire mid-stream cleanup.
type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
