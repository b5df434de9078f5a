package api

import (
	"context"
	"net/http"

	"github.com/streamhub/streamhub/internal/canonical"
	"github.com/streamhub/streamhub/internal/fallback"
)

//go:generate mockgen -source=deps.go -destination=mocks/mocks.go -package=mocks

// MangaCatalog serves manga listings, metadata, and page URLs.
type MangaCatalog interface {
	Recent(ctx context.Context, limit, offset int) ([]canonical.Item, error)
	Search(ctx context.Context, query string, limit int) ([]canonical.Item, error)
	Info(ctx context.Context, id string) (*canonical.MangaInfo, error)
	Chapters(ctx context.Context, id string, limit, offset int) ([]canonical.Chapter, error)
	Pages(ctx context.Context, chapterID string) ([]string, error)
	CoverOrigin(mangaID, fileName string) string
}

// AnimeCatalog serves anime listings, episode lists, and stream sources.
type AnimeCatalog interface {
	Recent(ctx context.Context, page int) ([]canonical.Item, error)
	Search(ctx context.Context, query string) ([]canonical.Item, error)
	Episodes(ctx context.Context, id string) (*canonical.Detail, error)
	Watch(ctx context.Context, episodeID, server string) (*canonical.Stream, error)
}

// MovieCatalog serves movie listings, details, and stream sources.
type MovieCatalog interface {
	Recent(ctx context.Context, page int) ([]canonical.Item, error)
	Search(ctx context.Context, query string, page int) ([]canonical.Item, error)
	Info(ctx context.Context, id string) (*canonical.Detail, error)
	Watch(ctx context.Context, episodeID, mediaID string) (*canonical.Stream, error)
}

// CoverFetcher performs a single streaming GET against an image origin.
type CoverFetcher interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Prober reports reachability of the configured upstream providers.
type Prober interface {
	Probe(ctx context.Context) []fallback.ProbeResult
}

// ProbeFunc adapts a plain function to the Prober interface.
type ProbeFunc func(ctx context.Context) []fallback.ProbeResult

func (f ProbeFunc) Probe(ctx context.Context) []fallback.ProbeResult { return f(ctx) }

// Deps carries the collaborators the HTTP handlers call into.
// Prober is optional; everything else is required.
type Deps struct {
	Manga  MangaCatalog
	Anime  AnimeCatalog
	Movies MovieCatalog
	Covers CoverFetcher
	Prober Prober
}

func (d Deps) validate() error {
	switch {
	case d.Manga == nil:
		return errMissingDep("Manga")
	case d.Anime == nil:
		return errMissingDep("Anime")
	case d.Movies == nil:
		return errMissingDep("Movies")
	case d.Covers == nil:
		return errMissingDep("Covers")
	}
	return nil
}

type errMissingDep string

func (e errMissingDep) Error() string { return "api: missing dependency " + string(e) }
