package api

import (
	"errors"
	"net/http"

	"github.com/streamhub/streamhub/internal/fallback"
)

const defaultAnimeServer = "gogocdn"

func (s *Server) handleAnimeRecent(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1, 1, 1000)

	items, err := s.deps.Anime.Recent(r.Context(), page)
	if err != nil {
		s.log.Error("anime recent failed", "page", page, "error", err)
		writeJSON(w, http.StatusOK, results(nil))
		return
	}
	writeJSON(w, http.StatusOK, results(items))
}

func (s *Server) handleAnimeSearch(w http.ResponseWriter, r *http.Request) {
	query := queryString(r, "q", "")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Search query is required", "")
		return
	}

	items, err := s.deps.Anime.Search(r.Context(), query)
	if err != nil {
		s.log.Error("anime search failed", "query", query, "error", err)
		writeJSON(w, http.StatusOK, results(nil))
		return
	}
	writeJSON(w, http.StatusOK, results(items))
}

func (s *Server) handleAnimeResource(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("resource") != "episodes" {
		http.NotFound(w, r)
		return
	}
	s.handleAnimeEpisodes(w, r)
}

func (s *Server) handleAnimeEpisodes(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	detail, err := s.deps.Anime.Episodes(r.Context(), id)
	if err != nil {
		s.log.Error("anime episodes failed", "id", id, "error", err)
		if errors.Is(err, fallback.ErrAllProvidersFailed) {
			writeError(w, http.StatusNotFound, "Anime not found", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch episodes", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleAnimeWatch(w http.ResponseWriter, r *http.Request) {
	episodeID := r.PathValue("episodeId")
	server := queryString(r, "server", defaultAnimeServer)

	stream, err := s.deps.Anime.Watch(r.Context(), episodeID, server)
	if err != nil {
		s.log.Error("anime watch failed", "episode", episodeID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch streaming links", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stream)
}
