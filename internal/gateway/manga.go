package gateway

import (
	"context"

	"github.com/streamhub/streamhub/internal/canonical"
	"github.com/streamhub/streamhub/pkg/relevance"
)

// MangaProvider is the upstream manga source.
type MangaProvider interface {
	Name() string
	Recent(ctx context.Context, limit, offset int) ([]canonical.Item, error)
	Search(ctx context.Context, query string, limit int) ([]canonical.Item, error)
	Info(ctx context.Context, id string) (*canonical.MangaInfo, error)
	Chapters(ctx context.Context, id string, limit, offset int) ([]canonical.Chapter, error)
	Pages(ctx context.Context, chapterID string) ([]string, error)
	CoverOrigin(mangaID, fileName string) string
}

// Manga serves the manga catalog from its single upstream source.
type Manga struct {
	provider MangaProvider
}

func NewManga(provider MangaProvider) *Manga {
	return &Manga{provider: provider}
}

func (m *Manga) Recent(ctx context.Context, limit, offset int) ([]canonical.Item, error) {
	return m.provider.Recent(ctx, limit, offset)
}

// Search finds manga ranked by similarity to the query.
func (m *Manga) Search(ctx context.Context, query string, limit int) ([]canonical.Item, error) {
	items, err := m.provider.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	relevance.Rank(query, items, func(item canonical.Item) string { return item.Title })
	return items, nil
}

func (m *Manga) Info(ctx context.Context, id string) (*canonical.MangaInfo, error) {
	return m.provider.Info(ctx, id)
}

func (m *Manga) Chapters(ctx context.Context, id string, limit, offset int) ([]canonical.Chapter, error) {
	return m.provider.Chapters(ctx, id, limit, offset)
}

func (m *Manga) Pages(ctx context.Context, chapterID string) ([]string, error) {
	return m.provider.Pages(ctx, chapterID)
}

// CoverOrigin is the true upstream URL the media proxy fetches from.
func (m *Manga) CoverOrigin(mangaID, fileName string) string {
	return m.provider.CoverOrigin(mangaID, fileName)
}
