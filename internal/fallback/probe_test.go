package fallback

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer notFound.Close()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer broken.Close()

	results := Probe(context.Background(), []Target{
		{Name: "consumet", URL: healthy.URL},
		{Name: "mangadex", URL: notFound.URL},
		{Name: "uploads", URL: broken.URL},
		{Name: "gone", URL: "http://127.0.0.1:1"},
	}, 2*time.Second)

	require.Len(t, results, 4)

	// Results come back in target order despite concurrent probing.
	assert.Equal(t, "consumet", results[0].Provider)
	assert.True(t, results[0].Healthy)

	assert.True(t, results[1].Healthy, "a 404 from the base URL still means reachable")

	assert.False(t, results[2].Healthy)
	assert.Contains(t, results[2].Error, "502")

	assert.False(t, results[3].Healthy)
	assert.NotEmpty(t, results[3].Error)
}
