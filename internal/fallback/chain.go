// Package fallback implements the provider fallback chain: a capability is
// an ordered list of provider steps tried in priority order until one yields
// usable data. Listing capabilities degrade to empty rather than erroring so
// a total provider outage never breaks the gallery view.
package fallback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/streamhub/streamhub/internal/metrics"
)

// ErrAllProvidersFailed is returned by Lookup when every provider in the
// chain failed or had no answer.
var ErrAllProvidersFailed = errors.New("all providers failed")

// Step is one provider's entry in a capability chain.
type Step[T any] struct {
	Provider string
	Fetch    func(ctx context.Context) (T, error)
}

// Attempt records the outcome of one provider call. Attempts exist only to
// decide whether the chain continues and to feed logging; they are not
// returned to clients.
type Attempt struct {
	Provider string
	Err      error
	Results  int
}

// Runner executes capability chains with shared logging and metrics.
type Runner struct {
	log     *slog.Logger
	metrics *metrics.Metrics
}

func NewRunner(log *slog.Logger, m *metrics.Metrics) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{log: log, metrics: m}
}

// First tries each step in order and returns the first non-empty result
// along with the provider that produced it. A step that errors or returns an
// empty list does not abort the chain. If every step fails, First returns
// (nil, "") — never an error.
func First[E any](ctx context.Context, r *Runner, capability string, steps []Step[[]E]) ([]E, string) {
	var attempts []Attempt
	for _, step := range steps {
		data, err := step.Fetch(ctx)
		attempts = append(attempts, Attempt{Provider: step.Provider, Err: err, Results: len(data)})
		switch {
		case err != nil:
			r.metrics.ProviderRequest(capability, step.Provider, "error")
			r.log.Warn("provider failed, trying next",
				"capability", capability, "provider", step.Provider, "error", err)
		case len(data) == 0:
			r.metrics.ProviderRequest(capability, step.Provider, "empty")
			r.log.Debug("provider returned no results, trying next",
				"capability", capability, "provider", step.Provider)
		default:
			r.metrics.ProviderRequest(capability, step.Provider, "ok")
			r.log.Debug("provider succeeded",
				"capability", capability, "provider", step.Provider, "results", len(data))
			return data, step.Provider
		}
	}
	r.log.Info("all providers exhausted",
		"capability", capability, "attempts", len(attempts))
	return nil, ""
}

// Lookup tries each step in order and returns the first result delivered
// without error. Unlike First, total exhaustion is an error: for
// single-entity capabilities an empty answer would mislead the caller into
// thinking the entity doesn't exist.
func Lookup[T any](ctx context.Context, r *Runner, capability string, steps []Step[T]) (T, string, error) {
	var zero T
	for _, step := range steps {
		data, err := step.Fetch(ctx)
		if err != nil {
			r.metrics.ProviderRequest(capability, step.Provider, "error")
			r.log.Warn("provider failed, trying next",
				"capability", capability, "provider", step.Provider, "error", err)
			continue
		}
		r.metrics.ProviderRequest(capability, step.Provider, "ok")
		return data, step.Provider, nil
	}
	return zero, "", fmt.Errorf("%s: %w", capability, ErrAllProvidersFailed)
}
