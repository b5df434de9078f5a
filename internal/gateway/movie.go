package gateway

import (
	"context"

	"github.com/streamhub/streamhub/internal/canonical"
	"github.com/streamhub/streamhub/internal/fallback"
	"github.com/streamhub/streamhub/pkg/relevance"
)

// MovieProvider is the upstream movie source.
type MovieProvider interface {
	Name() string
	Trending(ctx context.Context, page int) ([]canonical.Item, error)
	Popular(ctx context.Context, page int) ([]canonical.Item, error)
	Search(ctx context.Context, query string, page int) ([]canonical.Item, error)
	Info(ctx context.Context, id string) (*canonical.Detail, error)
	Watch(ctx context.Context, episodeID, mediaID string) (*canonical.Stream, error)
}

// Movies serves the movie catalog. There is one upstream source; the
// fallback pair for recent listings is trending → popular.
type Movies struct {
	provider MovieProvider
	runner   *fallback.Runner
}

func NewMovies(runner *fallback.Runner, provider MovieProvider) *Movies {
	return &Movies{provider: provider, runner: runner}
}

// Recent lists trending movies, falling back to all-time popular when
// trending is down or empty. A total outage yields an empty list.
func (m *Movies) Recent(ctx context.Context, page int) ([]canonical.Item, error) {
	items, _ := fallback.First(ctx, m.runner, "movie.recent", []fallback.Step[[]canonical.Item]{
		{
			Provider: m.provider.Name() + "/trending",
			Fetch: func(ctx context.Context) ([]canonical.Item, error) {
				return m.provider.Trending(ctx, page)
			},
		},
		{
			Provider: m.provider.Name() + "/popular",
			Fetch: func(ctx context.Context) ([]canonical.Item, error) {
				return m.provider.Popular(ctx, page)
			},
		},
	})
	return items, nil
}

// Search finds movies ranked by similarity to the query. Upstream failure
// yields an empty list, never an error.
func (m *Movies) Search(ctx context.Context, query string, page int) ([]canonical.Item, error) {
	items, _ := fallback.First(ctx, m.runner, "movie.search", []fallback.Step[[]canonical.Item]{
		{
			Provider: m.provider.Name(),
			Fetch: func(ctx context.Context) ([]canonical.Item, error) {
				return m.provider.Search(ctx, query, page)
			},
		},
	})
	relevance.Rank(query, items, func(item canonical.Item) string { return item.Title })
	return items, nil
}

// Info fetches a movie or show's detail.
func (m *Movies) Info(ctx context.Context, id string) (*canonical.Detail, error) {
	return m.provider.Info(ctx, id)
}

// Watch resolves stream sources for one episode of a media item.
func (m *Movies) Watch(ctx context.Context, episodeID, mediaID string) (*canonical.Stream, error) {
	return m.provider.Watch(ctx, episodeID, mediaID)
}
