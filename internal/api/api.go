// Package api implements the gateway's HTTP surface: content routes for
// manga, anime, and movies, the cover image proxy, and health endpoints.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// Server holds the handler dependencies and registers the route table.
type Server struct {
	deps    Deps
	version string
	log     *slog.Logger
}

func New(deps Deps, version string, log *slog.Logger) (*Server, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, version: version, log: log}, nil
}

// RegisterRoutes attaches all gateway routes to mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /health/providers", s.handleHealthProviders)

	// The {id}/{resource} patterns dispatch inside the handler: ServeMux
	// rejects {id}/info alongside chapter/{chapterId} (and {id}/episodes
	// alongside watch/{episodeId}) because neither pattern is more specific
	// than the other, while a literal third segment beats {id}/{resource}.
	mux.HandleFunc("GET /content/manga/recent", s.handleMangaRecent)
	mux.HandleFunc("GET /content/manga/search", s.handleMangaSearch)
	mux.HandleFunc("GET /content/manga/chapter/{chapterId}", s.handleChapterPages)
	mux.HandleFunc("GET /content/manga/cover/{mangaId}/{fileName}", s.handleMangaCover)
	mux.HandleFunc("GET /content/manga/{id}/{resource}", s.handleMangaResource)

	mux.HandleFunc("GET /content/anime/recent", s.handleAnimeRecent)
	mux.HandleFunc("GET /content/anime/search", s.handleAnimeSearch)
	mux.HandleFunc("GET /content/anime/watch/{episodeId}", s.handleAnimeWatch)
	mux.HandleFunc("GET /content/anime/{id}/{resource}", s.handleAnimeResource)

	mux.HandleFunc("GET /content/movie/recent", s.handleMovieRecent)
	mux.HandleFunc("GET /content/movie/search", s.handleMovieSearch)
	mux.HandleFunc("GET /content/movie/watch/{episodeId}", s.handleMovieWatch)
	mux.HandleFunc("GET /content/movie/{id}/{resource}", s.handleMovieResource)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, bannerResponse{
		Message: "streamhub gateway is running",
		Version: s.version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleHealthProviders(w http.ResponseWriter, r *http.Request) {
	if s.deps.Prober == nil {
		writeError(w, http.StatusServiceUnavailable, "Provider probing is not configured", "")
		return
	}
	writeJSON(w, http.StatusOK, providersResponse{
		Providers: s.deps.Prober.Probe(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	writeJSON(w, status, errorResponse{Error: msg, Message: detail})
}

// queryInt parses name from the query string, falling back to def and
// clamping the result into [min, max].
func queryInt(r *http.Request, name string, def, min, max int) int {
	v := def
	if raw := r.URL.Query().Get(name); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			v = n
		}
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

func queryString(r *http.Request, name, def string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return def
}
