package fallback

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Target is one upstream base URL to probe.
type Target struct {
	Name string
	URL  string
}

// ProbeResult reports reachability of one provider.
type ProbeResult struct {
	Provider  string `json:"provider"`
	Healthy   bool   `json:"healthy"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// Probe checks all targets concurrently and returns results in target order.
// Reachability, not content: any HTTP response below 500 counts as healthy,
// since several providers answer their base URL with a 404.
func Probe(ctx context.Context, targets []Target, timeout time.Duration) []ProbeResult {
	results := make([]ProbeResult, len(targets))
	client := &http.Client{Timeout: timeout}

	g, ctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		g.Go(func() error {
			results[i] = probeOne(ctx, client, target)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func probeOne(ctx context.Context, client *http.Client, target Target) ProbeResult {
	result := ProbeResult{Provider: target.Name}
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	resp, err := client.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	result.LatencyMS = time.Since(start).Milliseconds()
	if resp.StatusCode >= 500 {
		result.Error = "provider returned HTTP " + resp.Status
		return result
	}
	result.Healthy = true
	return result
}
