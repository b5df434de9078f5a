package consumet

import (
	"context"
	"fmt"
	"net/url"

	"github.com/streamhub/streamhub/internal/canonical"
	"github.com/streamhub/streamhub/internal/fetch"
)

// ProviderFlixHQ is the Consumet movie source.
const ProviderFlixHQ = "flixhq"

// MovieClient adapts the Consumet flixhq movie source.
type MovieClient struct {
	baseURL string
	fetcher *fetch.Client
}

// NewMovieClient creates the flixhq adapter.
func NewMovieClient(baseURL string, fetcher *fetch.Client) *MovieClient {
	return &MovieClient{baseURL: baseURL, fetcher: fetcher}
}

// Name identifies the provider in logs and fallback attempts.
func (c *MovieClient) Name() string { return ProviderFlixHQ }

// Trending lists currently trending movies and shows.
func (c *MovieClient) Trending(ctx context.Context, page int) ([]canonical.Item, error) {
	return c.list(ctx, fmt.Sprintf("%s/movies/flixhq/trending?page=%d", c.baseURL, page), "trending")
}

// Popular lists all-time popular movies and shows; the fallback when
// trending has nothing.
func (c *MovieClient) Popular(ctx context.Context, page int) ([]canonical.Item, error) {
	return c.list(ctx, fmt.Sprintf("%s/movies/flixhq/popular?page=%d", c.baseURL, page), "popular")
}

// Search finds movies and shows by title.
func (c *MovieClient) Search(ctx context.Context, query string, page int) ([]canonical.Item, error) {
	u := fmt.Sprintf("%s/movies/flixhq/%s?page=%d", c.baseURL, url.PathEscape(query), page)
	return c.list(ctx, u, "search")
}

func (c *MovieClient) list(ctx context.Context, u, op string) ([]canonical.Item, error) {
	var resp listResponse
	if err := c.fetcher.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("flixhq %s: %w", op, err)
	}

	items := make([]canonical.Item, len(resp.Results))
	for i, r := range resp.Results {
		items[i] = canonical.Item{
			ID:          r.ID,
			Title:       r.Title.Title(),
			Image:       canonical.ImageOrPlaceholder(r.Image),
			Description: canonical.NoDescription,
			ReleaseDate: string(r.ReleaseDate),
			Status:      canonical.StatusUnknown,
			Type:        canonical.OrString(r.Type, canonical.TypeMovie),
		}
	}
	return items, nil
}

// Info fetches a movie or show's detail; for shows the episode list carries
// every watchable episode, for movies a single pseudo-episode.
func (c *MovieClient) Info(ctx context.Context, id string) (*canonical.Detail, error) {
	var resp detailResponse
	u := fmt.Sprintf("%s/movies/flixhq/info?id=%s", c.baseURL, url.QueryEscape(id))
	if err := c.fetcher.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("flixhq info: %w", err)
	}
	return resp.toDetail(), nil
}

// Watch resolves stream sources for one episode of a media item.
func (c *MovieClient) Watch(ctx context.Context, episodeID, mediaID string) (*canonical.Stream, error) {
	u := fmt.Sprintf("%s/movies/flixhq/watch?episodeId=%s&mediaId=%s",
		c.baseURL, url.QueryEscape(episodeID), url.QueryEscape(mediaID))

	var resp watchResponse
	if err := c.fetcher.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("flixhq watch: %w", err)
	}
	return resp.toStream(), nil
}
