package consumet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamhub/streamhub/internal/canonical"
)

func TestMovieTrending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies/flixhq/trending", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"results":[
			{"id":"movie/dune-2","title":"Dune: Part Two","image":"https://img/dune.jpg","releaseDate":"2024-03-01","type":"Movie"},
			{"id":"tv/severance","title":"Severance"}
		]}`))
	}))
	defer server.Close()

	client := NewMovieClient(server.URL, testFetcher())

	items, err := client.Trending(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Dune: Part Two", items[0].Title)
	assert.Equal(t, "2024-03-01", items[0].ReleaseDate)
	assert.Equal(t, "Movie", items[0].Type)

	assert.Equal(t, canonical.TypeMovie, items[1].Type, "missing type defaults to Movie")
	assert.Equal(t, canonical.PlaceholderImage, items[1].Image)
}

func TestMoviePopular(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies/flixhq/popular", r.URL.Path)
		_, _ = w.Write([]byte(`{"results":[{"id":"m1","title":"Inception"}]}`))
	}))
	defer server.Close()

	client := NewMovieClient(server.URL, testFetcher())

	items, err := client.Popular(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Inception", items[0].Title)
}

func TestMovieSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies/flixhq/the%20matrix", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"results":[{"id":"movie/the-matrix","title":"The Matrix","releaseDate":"1999"}]}`))
	}))
	defer server.Close()

	client := NewMovieClient(server.URL, testFetcher())

	items, err := client.Search(context.Background(), "the matrix", 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "movie/the-matrix", items[0].ID)
}

func TestMovieInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies/flixhq/info", r.URL.Path)
		assert.Equal(t, "movie/dune-2", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`{
			"id":"movie/dune-2",
			"title":"Dune: Part Two",
			"description":"Paul unites with the Fremen.",
			"image":"https://img/dune.jpg",
			"releaseDate":"2024-03-01",
			"episodes":[{"id":"ep1","number":1,"title":"Dune: Part Two"}]
		}`))
	}))
	defer server.Close()

	client := NewMovieClient(server.URL, testFetcher())

	detail, err := client.Info(context.Background(), "movie/dune-2")
	require.NoError(t, err)
	assert.Equal(t, "Dune: Part Two", detail.Title)
	assert.Equal(t, "2024-03-01", detail.ReleaseDate)
	require.Len(t, detail.Episodes, 1)
}

func TestMovieInfo_NoEpisodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"m","title":"M"}`))
	}))
	defer server.Close()

	client := NewMovieClient(server.URL, testFetcher())

	detail, err := client.Info(context.Background(), "m")
	require.NoError(t, err)
	assert.NotNil(t, detail.Episodes, "episodes must be an array, never null")
	assert.Empty(t, detail.Episodes)
}

func TestMovieWatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies/flixhq/watch", r.URL.Path)
		assert.Equal(t, "ep1", r.URL.Query().Get("episodeId"))
		assert.Equal(t, "movie/dune-2", r.URL.Query().Get("mediaId"))
		_, _ = w.Write([]byte(`{"sources":[{"url":"https://cdn/dune.m3u8","quality":"auto","isM3U8":true}]}`))
	}))
	defer server.Close()

	client := NewMovieClient(server.URL, testFetcher())

	stream, err := client.Watch(context.Background(), "ep1", "movie/dune-2")
	require.NoError(t, err)
	require.Len(t, stream.Sources, 1)
	assert.NotNil(t, stream.Subtitles)
}
