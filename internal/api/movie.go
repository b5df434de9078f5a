package api

import "net/http"

func (s *Server) handleMovieRecent(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1, 1, 1000)

	items, err := s.deps.Movies.Recent(r.Context(), page)
	if err != nil {
		s.log.Error("movie recent failed", "page", page, "error", err)
		writeJSON(w, http.StatusOK, results(nil))
		return
	}
	writeJSON(w, http.StatusOK, results(items))
}

func (s *Server) handleMovieSearch(w http.ResponseWriter, r *http.Request) {
	query := queryString(r, "q", "")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Search query is required", "")
		return
	}
	page := queryInt(r, "page", 1, 1, 1000)

	items, err := s.deps.Movies.Search(r.Context(), query, page)
	if err != nil {
		s.log.Error("movie search failed", "query", query, "error", err)
		writeJSON(w, http.StatusOK, results(nil))
		return
	}
	writeJSON(w, http.StatusOK, results(items))
}

func (s *Server) handleMovieResource(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("resource") != "episodes" {
		http.NotFound(w, r)
		return
	}
	s.handleMovieInfo(w, r)
}

func (s *Server) handleMovieInfo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	detail, err := s.deps.Movies.Info(r.Context(), id)
	if err != nil {
		s.log.Error("movie info failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch movie info", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleMovieWatch(w http.ResponseWriter, r *http.Request) {
	episodeID := r.PathValue("episodeId")
	mediaID := queryString(r, "mediaId", "")
	if mediaID == "" {
		writeError(w, http.StatusBadRequest, "mediaId query parameter is required", "")
		return
	}

	stream, err := s.deps.Movies.Watch(r.Context(), episodeID, mediaID)
	if err != nil {
		s.log.Error("movie watch failed", "episode", episodeID, "media", mediaID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch streaming links", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stream)
}
