// Package gateway composes the provider adapters behind fallback chains and
// exposes one catalog per content family to the API layer.
package gateway

import (
	"context"

	"github.com/streamhub/streamhub/internal/canonical"
	"github.com/streamhub/streamhub/internal/fallback"
	"github.com/streamhub/streamhub/pkg/relevance"
)

// AnimeProvider is one upstream anime source. Adapters return canonical
// shapes; the gateway only decides which adapter's answer to use.
type AnimeProvider interface {
	Name() string
	Recent(ctx context.Context, page int) ([]canonical.Item, error)
	Search(ctx context.Context, query string) ([]canonical.Item, error)
	Info(ctx context.Context, id string) (*canonical.Detail, error)
	Watch(ctx context.Context, episodeID, server string) (*canonical.Stream, error)
}

// Anime tries its providers in priority order for every capability.
type Anime struct {
	providers []AnimeProvider
	runner    *fallback.Runner
}

// NewAnime creates the anime catalog. Provider order is fallback order.
func NewAnime(runner *fallback.Runner, providers ...AnimeProvider) *Anime {
	return &Anime{providers: providers, runner: runner}
}

// Recent lists recently released episodes from the first provider with data.
// A total outage yields an empty list, never an error.
func (a *Anime) Recent(ctx context.Context, page int) ([]canonical.Item, error) {
	steps := make([]fallback.Step[[]canonical.Item], len(a.providers))
	for i, p := range a.providers {
		steps[i] = fallback.Step[[]canonical.Item]{
			Provider: p.Name(),
			Fetch: func(ctx context.Context) ([]canonical.Item, error) {
				return p.Recent(ctx, page)
			},
		}
	}
	items, _ := fallback.First(ctx, a.runner, "anime.recent", steps)
	return items, nil
}

// Search finds anime across the provider chain, ranked by similarity to the
// query. A total outage yields an empty list, never an error.
func (a *Anime) Search(ctx context.Context, query string) ([]canonical.Item, error) {
	steps := make([]fallback.Step[[]canonical.Item], len(a.providers))
	for i, p := range a.providers {
		steps[i] = fallback.Step[[]canonical.Item]{
			Provider: p.Name(),
			Fetch: func(ctx context.Context) ([]canonical.Item, error) {
				return p.Search(ctx, query)
			},
		}
	}
	items, _ := fallback.First(ctx, a.runner, "anime.search", steps)
	relevance.Rank(query, items, func(item canonical.Item) string { return item.Title })
	return items, nil
}

// Episodes fetches one anime's detail. Exhausting the chain returns
// fallback.ErrAllProvidersFailed: for a lookup, emptiness would wrongly
// suggest the anime doesn't exist.
func (a *Anime) Episodes(ctx context.Context, id string) (*canonical.Detail, error) {
	steps := make([]fallback.Step[*canonical.Detail], len(a.providers))
	for i, p := range a.providers {
		steps[i] = fallback.Step[*canonical.Detail]{
			Provider: p.Name(),
			Fetch: func(ctx context.Context) (*canonical.Detail, error) {
				return p.Info(ctx, id)
			},
		}
	}
	detail, _, err := fallback.Lookup(ctx, a.runner, "anime.episodes", steps)
	return detail, err
}

// Watch resolves stream sources for an episode across the provider chain.
func (a *Anime) Watch(ctx context.Context, episodeID, server string) (*canonical.Stream, error) {
	steps := make([]fallback.Step[*canonical.Stream], len(a.providers))
	for i, p := range a.providers {
		steps[i] = fallback.Step[*canonical.Stream]{
			Provider: p.Name(),
			Fetch: func(ctx context.Context) (*canonical.Stream, error) {
				return p.Watch(ctx, episodeID, server)
			},
		}
	}
	stream, _, err := fallback.Lookup(ctx, a.runner, "anime.watch", steps)
	return stream, err
}
