package api

import (
	"io"
	"net/http"

	"github.com/streamhub/streamhub/internal/canonical"
)

const (
	defaultListLimit    = 20
	maxListLimit        = 100
	defaultChapterLimit = 500
	maxChapterLimit     = 500
)

func (s *Server) handleMangaRecent(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultListLimit, 1, maxListLimit)
	offset := queryInt(r, "offset", 0, 0, 10000)

	items, err := s.deps.Manga.Recent(r.Context(), limit, offset)
	if err != nil {
		// Listings degrade to an empty result set rather than erroring.
		s.log.Error("manga recent failed", "error", err)
		writeJSON(w, http.StatusOK, results(nil))
		return
	}
	writeJSON(w, http.StatusOK, results(items))
}

func (s *Server) handleMangaSearch(w http.ResponseWriter, r *http.Request) {
	query := queryString(r, "q", "")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Search query is required", "")
		return
	}
	limit := queryInt(r, "limit", defaultListLimit, 1, maxListLimit)

	items, err := s.deps.Manga.Search(r.Context(), query, limit)
	if err != nil {
		s.log.Error("manga search failed", "query", query, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to search manga", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, results(items))
}

func (s *Server) handleMangaResource(w http.ResponseWriter, r *http.Request) {
	switch r.PathValue("resource") {
	case "info":
		s.handleMangaInfo(w, r)
	case "chapters":
		s.handleMangaChapters(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleMangaInfo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	info, err := s.deps.Manga.Info(r.Context(), id)
	if err != nil {
		s.log.Error("manga info failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch manga info", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleMangaChapters(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	limit := queryInt(r, "limit", defaultChapterLimit, 1, maxChapterLimit)
	offset := queryInt(r, "offset", 0, 0, 10000)

	chapters, err := s.deps.Manga.Chapters(r.Context(), id, limit, offset)
	if err != nil {
		s.log.Error("manga chapters failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch chapters", err.Error())
		return
	}
	if chapters == nil {
		chapters = []canonical.Chapter{}
	}
	writeJSON(w, http.StatusOK, chaptersResponse{Chapters: chapters})
}

func (s *Server) handleChapterPages(w http.ResponseWriter, r *http.Request) {
	chapterID := r.PathValue("chapterId")

	pages, err := s.deps.Manga.Pages(r.Context(), chapterID)
	if err != nil {
		s.log.Error("chapter pages failed", "chapter", chapterID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch chapter pages", err.Error())
		return
	}
	if pages == nil {
		pages = []string{}
	}
	writeJSON(w, http.StatusOK, pagesResponse{Pages: pages})
}

// handleMangaCover streams a cover image from the upstream CDN. Any
// failure collapses to a plain 404 so broken covers render as missing
// images instead of surfacing upstream errors to the browser.
func (s *Server) handleMangaCover(w http.ResponseWriter, r *http.Request) {
	origin := s.deps.Manga.CoverOrigin(r.PathValue("mangaId"), r.PathValue("fileName"))

	resp, err := s.deps.Covers.Get(r.Context(), origin)
	if err != nil {
		s.log.Warn("cover fetch failed", "url", origin, "error", err)
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = io.Copy(w, resp.Body)
}
