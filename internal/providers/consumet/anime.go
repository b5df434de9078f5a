// Package consumet holds the Consumet API adapters. Consumet fronts several
// scraped sources; the gateway addresses each source (gogoanime, zoro,
// flixhq) as its own provider so fallback order stays explicit.
package consumet

import (
	"context"
	"fmt"
	"net/url"

	"github.com/streamhub/streamhub/internal/canonical"
	"github.com/streamhub/streamhub/internal/fetch"
)

// Anime provider names understood by Consumet.
const (
	ProviderGogoanime = "gogoanime"
	ProviderZoro      = "zoro"
)

// AnimeClient adapts one Consumet anime source.
type AnimeClient struct {
	provider string
	baseURL  string
	fetcher  *fetch.Client
}

// NewAnimeClient creates an adapter for the named Consumet anime source.
func NewAnimeClient(provider, baseURL string, fetcher *fetch.Client) *AnimeClient {
	return &AnimeClient{provider: provider, baseURL: baseURL, fetcher: fetcher}
}

// Name identifies the provider in logs and fallback attempts.
func (c *AnimeClient) Name() string { return c.provider }

// Recent lists recently released episodes.
func (c *AnimeClient) Recent(ctx context.Context, page int) ([]canonical.Item, error) {
	var resp listResponse
	u := fmt.Sprintf("%s/anime/%s/recent-episodes?page=%d", c.baseURL, c.provider, page)
	if err := c.fetcher.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("%s recent: %w", c.provider, err)
	}

	items := make([]canonical.Item, len(resp.Results))
	for i, r := range resp.Results {
		episodeNumber := float64(r.EpisodeNumber)
		if episodeNumber == 0 {
			episodeNumber = 1
		}
		items[i] = canonical.Item{
			ID:            r.ID,
			Title:         r.Title.Title(),
			Image:         canonical.ImageOrPlaceholder(r.Image),
			Description:   canonical.NoDescription,
			Status:        canonical.OrString(r.Status, canonical.StatusUnknown),
			EpisodeNumber: episodeNumber,
			URL:           r.URL,
		}
	}
	return items, nil
}

// Search finds anime by title.
func (c *AnimeClient) Search(ctx context.Context, query string) ([]canonical.Item, error) {
	var resp listResponse
	u := fmt.Sprintf("%s/anime/%s/%s", c.baseURL, c.provider, url.PathEscape(query))
	if err := c.fetcher.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("%s search: %w", c.provider, err)
	}

	items := make([]canonical.Item, len(resp.Results))
	for i, r := range resp.Results {
		items[i] = canonical.Item{
			ID:          r.ID,
			Title:       r.Title.Title(),
			Image:       canonical.ImageOrPlaceholder(r.Image),
			Description: canonical.NoDescription,
			ReleaseDate: string(r.ReleaseDate),
			Status:      canonical.OrString(r.Status, canonical.StatusUnknown),
			SubOrDub:    canonical.OrString(r.SubOrDub, canonical.SubOrDubSub),
		}
	}
	return items, nil
}

// Info fetches a single anime's detail including its episode list, which is
// kept in provider order.
func (c *AnimeClient) Info(ctx context.Context, id string) (*canonical.Detail, error) {
	var resp detailResponse
	u := fmt.Sprintf("%s/anime/%s/info/%s", c.baseURL, c.provider, url.PathEscape(id))
	if err := c.fetcher.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("%s info: %w", c.provider, err)
	}
	return resp.toDetail(), nil
}

// Watch resolves stream sources for one episode. Gogoanime takes the episode
// in the path plus a server hint; zoro takes it as a query parameter.
func (c *AnimeClient) Watch(ctx context.Context, episodeID, server string) (*canonical.Stream, error) {
	var u string
	switch c.provider {
	case ProviderZoro:
		u = fmt.Sprintf("%s/anime/zoro/watch?episodeId=%s", c.baseURL, url.QueryEscape(episodeID))
	default:
		u = fmt.Sprintf("%s/anime/%s/watch/%s?server=%s",
			c.baseURL, c.provider, url.PathEscape(episodeID), url.QueryEscape(server))
	}

	var resp watchResponse
	if err := c.fetcher.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("%s watch: %w", c.provider, err)
	}
	return resp.toStream(), nil
}
