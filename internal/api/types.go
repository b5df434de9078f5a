package api

import (
	"github.com/streamhub/streamhub/internal/canonical"
	"github.com/streamhub/streamhub/internal/fallback"
)

type bannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type providersResponse struct {
	Providers []fallback.ProbeResult `json:"providers"`
}

type resultsResponse struct {
	Results []canonical.Item `json:"results"`
}

type chaptersResponse struct {
	Chapters []canonical.Chapter `json:"chapters"`
}

type pagesResponse struct {
	Pages []string `json:"pages"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func results(items []canonical.Item) resultsResponse {
	if items == nil {
		items = []canonical.Item{}
	}
	return resultsResponse{Results: items}
}
