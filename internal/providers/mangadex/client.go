// Package mangadex is the MangaDex provider adapter: it speaks the MangaDex
// API and maps its responses onto the gateway's canonical shapes.
package mangadex

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/streamhub/streamhub/internal/canonical"
	"github.com/streamhub/streamhub/internal/fetch"
)

const (
	defaultBaseURL    = "https://api.mangadex.org"
	defaultUploadsURL = "https://uploads.mangadex.org"

	// maxListTags caps the tags attached to a listing card.
	maxListTags = 5
)

// Client is a MangaDex API client.
type Client struct {
	baseURL    string
	uploadsURL string
	fetcher    *fetch.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithUploadsURL sets a custom cover origin base URL (for testing).
func WithUploadsURL(url string) Option {
	return func(c *Client) {
		c.uploadsURL = url
	}
}

// NewClient creates a MangaDex client on top of the retrying fetcher.
func NewClient(fetcher *fetch.Client, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		uploadsURL: defaultUploadsURL,
		fetcher:    fetcher,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name identifies the provider in logs and fallback attempts.
func (c *Client) Name() string { return "mangadex" }

// listFilters are the query parameters shared by Recent and Search: covers
// included, adult content excluded, English chapters available.
func listFilters() url.Values {
	params := url.Values{}
	params.Add("includes[]", "cover_art")
	params.Add("includes[]", "author")
	params.Add("includes[]", "artist")
	params.Add("contentRating[]", "safe")
	params.Add("contentRating[]", "suggestive")
	params.Set("hasAvailableChapters", "true")
	params.Add("availableTranslatedLanguage[]", "en")
	return params
}

// Recent lists manga ordered by latest uploaded chapter.
func (c *Client) Recent(ctx context.Context, limit, offset int) ([]canonical.Item, error) {
	params := listFilters()
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	params.Set("order[latestUploadedChapter]", "desc")

	var resp mangaListResponse
	if err := c.fetcher.GetJSON(ctx, c.baseURL+"/manga?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("mangadex recent: %w", err)
	}
	return itemsFromMangas(resp.Data), nil
}

// Search finds manga by title.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]canonical.Item, error) {
	params := listFilters()
	params.Set("title", query)
	params.Set("limit", strconv.Itoa(limit))

	var resp mangaListResponse
	if err := c.fetcher.GetJSON(ctx, c.baseURL+"/manga?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("mangadex search: %w", err)
	}
	return itemsFromMangas(resp.Data), nil
}

// Info fetches a single manga's detail.
func (c *Client) Info(ctx context.Context, id string) (*canonical.MangaInfo, error) {
	params := url.Values{}
	params.Add("includes[]", "cover_art")
	params.Add("includes[]", "author")
	params.Add("includes[]", "artist")

	var resp mangaResponse
	u := c.baseURL + "/manga/" + url.PathEscape(id) + "?" + params.Encode()
	if err := c.fetcher.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("mangadex info: %w", err)
	}

	m := resp.Data
	return &canonical.MangaInfo{
		ID:          m.ID,
		Title:       canonical.NewLocaleText(m.Attributes.Title).Title(),
		Description: canonical.NewLocaleText(m.Attributes.Description).Description(),
		Image:       coverImage(m),
		Status:      canonical.OrString(m.Attributes.Status, canonical.StatusUnknown),
		Year:        m.Attributes.Year,
		Tags:        tagNames(m.Attributes.Tags, len(m.Attributes.Tags)),
	}, nil
}

// Chapters fetches the English chapter feed, dropping entries without a
// parsable chapter number and ordering the rest numerically ascending.
func (c *Client) Chapters(ctx context.Context, id string, limit, offset int) ([]canonical.Chapter, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	params.Add("translatedLanguage[]", "en")
	params.Set("order[chapter]", "asc")
	params.Set("includeFutureUpdates", "0")

	var resp feedResponse
	u := c.baseURL + "/manga/" + url.PathEscape(id) + "/feed?" + params.Encode()
	if err := c.fetcher.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("mangadex chapters: %w", err)
	}

	chapters := make([]canonical.Chapter, 0, len(resp.Data))
	for _, ch := range resp.Data {
		chapters = append(chapters, canonical.Chapter{
			ID:        ch.ID,
			Chapter:   ch.Attributes.Chapter,
			Title:     canonical.OrString(ch.Attributes.Title, "Chapter "+ch.Attributes.Chapter),
			Pages:     ch.Attributes.Pages,
			PublishAt: ch.Attributes.PublishAt,
		})
	}
	return canonical.SortChapters(chapters), nil
}

// Pages resolves a chapter to its full-size page image URLs via the
// MangaDex at-home server.
func (c *Client) Pages(ctx context.Context, chapterID string) ([]string, error) {
	var resp atHomeResponse
	u := c.baseURL + "/at-home/server/" + url.PathEscape(chapterID)
	if err := c.fetcher.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("mangadex pages: %w", err)
	}

	pages := make([]string, len(resp.Chapter.Data))
	for i, file := range resp.Chapter.Data {
		pages[i] = fmt.Sprintf("%s/data/%s/%s", resp.BaseURL, resp.Chapter.Hash, file)
	}
	return pages, nil
}

// CoverOrigin is the true upstream URL of a cover image. Clients never see
// it; the media proxy fetches it and re-serves the bytes.
func (c *Client) CoverOrigin(mangaID, fileName string) string {
	return fmt.Sprintf("%s/covers/%s/%s", c.uploadsURL, mangaID, fileName)
}

func itemsFromMangas(mangas []manga) []canonical.Item {
	items := make([]canonical.Item, 0, len(mangas))
	for _, m := range mangas {
		items = append(items, canonical.Item{
			ID:          m.ID,
			Title:       canonical.NewLocaleText(m.Attributes.Title).Title(),
			Description: canonical.NewLocaleText(m.Attributes.Description).Description(),
			Image:       coverImage(m),
			Status:      canonical.OrString(m.Attributes.Status, canonical.StatusUnknown),
			Rating:      m.Attributes.ContentRating,
			Year:        m.Attributes.Year,
			Tags:        tagNames(m.Attributes.Tags, maxListTags),
		})
	}
	return items
}

// coverImage maps a manga to its proxied cover path, or the placeholder when
// no cover_art relationship exists.
func coverImage(m manga) string {
	file := m.coverFileName()
	if file == "" {
		return canonical.PlaceholderImage
	}
	return canonical.CoverProxyPath(m.ID, file)
}

func tagNames(tags []tag, max int) []string {
	names := make([]string, 0, min(len(tags), max))
	for _, t := range tags {
		if len(names) == max {
			break
		}
		if name := t.Attributes.Name["en"]; name != "" {
			names = append(names, name)
		}
	}
	return names
}
