package mangadex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamhub/streamhub/internal/canonical"
	"github.com/streamhub/streamhub/internal/fetch"
)

func testFetcher() *fetch.Client {
	return fetch.New(fetch.Options{
		Attempts: 1,
		Backoff:  time.Millisecond,
		Timeout:  2 * time.Second,
	}, nil, nil)
}

func TestRecent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/manga", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "20", q.Get("limit"))
		assert.Equal(t, "desc", q.Get("order[latestUploadedChapter]"))
		assert.Equal(t, "true", q.Get("hasAvailableChapters"))
		assert.ElementsMatch(t, []string{"safe", "suggestive"}, q["contentRating[]"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{
			"id":"m1",
			"attributes":{
				"title":{"ja-ro":"Yofukashi no Uta","en":"Call of the Night"},
				"description":{"en":"A sleepless boy meets a vampire."},
				"status":"ongoing",
				"year":2019,
				"contentRating":"suggestive",
				"tags":[
					{"attributes":{"name":{"en":"Romance"}}},
					{"attributes":{"name":{"en":"Supernatural"}}}
				]
			},
			"relationships":[
				{"type":"author","attributes":{}},
				{"type":"cover_art","attributes":{"fileName":"cover1.jpg"}}
			]
		}]}`))
	}))
	defer server.Close()

	client := NewClient(testFetcher(), WithBaseURL(server.URL))

	items, err := client.Recent(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "m1", item.ID)
	assert.Equal(t, "Call of the Night", item.Title)
	assert.Equal(t, "A sleepless boy meets a vampire.", item.Description)
	assert.Equal(t, "/content/manga/cover/m1/cover1.jpg", item.Image)
	assert.Equal(t, "ongoing", item.Status)
	assert.Equal(t, "suggestive", item.Rating)
	assert.Equal(t, 2019, item.Year)
	assert.Equal(t, []string{"Romance", "Supernatural"}, item.Tags)
}

func TestRecent_MissingFieldsDefaulted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"m2","attributes":{},"relationships":[]}]}`))
	}))
	defer server.Close()

	client := NewClient(testFetcher(), WithBaseURL(server.URL))

	items, err := client.Recent(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, canonical.UnknownTitle, item.Title)
	assert.Equal(t, canonical.NoDescription, item.Description)
	assert.Equal(t, canonical.PlaceholderImage, item.Image, "image must never be empty")
	assert.Equal(t, canonical.StatusUnknown, item.Status)
}

func TestSearch_PassesTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "berserk", r.URL.Query().Get("title"))
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(testFetcher(), WithBaseURL(server.URL))

	items, err := client.Search(context.Background(), "berserk", 20)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/manga/m1", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{
			"id":"m1",
			"attributes":{
				"title":{"romaji":"Berserk"},
				"description":{},
				"status":"completed",
				"year":1989,
				"tags":[{"attributes":{"name":{"en":"Action"}}}]
			},
			"relationships":[{"type":"cover_art","attributes":{"fileName":"b.jpg"}}]
		}}`))
	}))
	defer server.Close()

	client := NewClient(testFetcher(), WithBaseURL(server.URL))

	info, err := client.Info(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "Berserk", info.Title)
	assert.Equal(t, canonical.NoDescription, info.Description)
	assert.Equal(t, "/content/manga/cover/m1/b.jpg", info.Image)
	assert.Equal(t, "completed", info.Status)
	assert.Equal(t, []string{"Action"}, info.Tags)
}

func TestChapters_FilteredAndSorted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/manga/m1/feed", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "asc", q.Get("order[chapter]"))
		assert.Equal(t, []string{"en"}, q["translatedLanguage[]"])

		_, _ = w.Write([]byte(`{"data":[
			{"id":"c10","attributes":{"chapter":"10","title":"Ten","pages":20,"publishAt":"2024-01-03T00:00:00Z"}},
			{"id":"c2","attributes":{"chapter":"2","title":"","pages":18,"publishAt":"2024-01-01T00:00:00Z"}},
			{"id":"c15","attributes":{"chapter":"1.5","title":"Extra","pages":8,"publishAt":"2024-01-02T00:00:00Z"}},
			{"id":"bad","attributes":{"chapter":"","title":"Oneshot","pages":30,"publishAt":"2024-01-04T00:00:00Z"}}
		]}`))
	}))
	defer server.Close()

	client := NewClient(testFetcher(), WithBaseURL(server.URL))

	chapters, err := client.Chapters(context.Background(), "m1", 500, 0)
	require.NoError(t, err)
	require.Len(t, chapters, 3)

	assert.Equal(t, []string{"1.5", "2", "10"}, []string{chapters[0].Chapter, chapters[1].Chapter, chapters[2].Chapter})
	assert.Equal(t, "Chapter 2", chapters[1].Title, "missing titles get a generated one")
}

func TestPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/at-home/server/ch1", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"baseUrl":"https://node.mangadex.network",
			"chapter":{"hash":"abc123","data":["1.png","2.png"]}
		}`))
	}))
	defer server.Close()

	client := NewClient(testFetcher(), WithBaseURL(server.URL))

	pages, err := client.Pages(context.Background(), "ch1")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://node.mangadex.network/data/abc123/1.png",
		"https://node.mangadex.network/data/abc123/2.png",
	}, pages)
}

func TestCoverOrigin(t *testing.T) {
	client := NewClient(testFetcher(), WithUploadsURL("https://uploads.example.org"))
	assert.Equal(t, "https://uploads.example.org/covers/m1/c.jpg", client.CoverOrigin("m1", "c.jpg"))
}

func TestRecent_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(testFetcher(), WithBaseURL(server.URL))

	_, err := client.Recent(context.Background(), 20, 0)
	var upstream *fetch.UpstreamError
	assert.ErrorAs(t, err, &upstream)
}
