package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oceanus-labs/argo-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(config.SearchConfig{
		APIKey:   "test-key",
		EngineID: "test-cx",
		Timeout:  5 * time.Second,
	}, zap.NewNop())
	client.endpoint = srv.URL
	return client
}

func TestSearch_ReturnsResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("key"))
		assert.Equal(t, "test-cx", q.Get("cx"))
		assert.Equal(t, "pacific salinity oceanography ocean data", q.Get("q"))
		assert.Equal(t, "5", q.Get("num"))
		assert.Equal(t, "active", q.Get("safe"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(searchResponse{
			Items: []searchItem{
				{Title: "Ocean Salinity", Snippet: "Salinity of the Pacific...", Link: "https://example.org/1"},
				{Title: "Sea Data", Snippet: "More data", Link: "https://example.org/2"},
			},
		})
	})

	results, err := client.Search(context.Background(), "pacific salinity oceanography ocean data", 5)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Ocean Salinity", results[0].Title)
	assert.Equal(t, "Salinity of the Pacific...", results[0].Snippet)
}

func TestSearch_UnconfiguredReturnsNoResults(t *testing.T) {
	client := NewClient(config.SearchConfig{Timeout: time.Second}, zap.NewNop())

	results, err := client.Search(context.Background(), "anything", 5)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_NonOKStatusIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	})

	_, err := client.Search(context.Background(), "q", 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestSearch_EmptyItemsIsEmptySlice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	results, err := client.Search(context.Background(), "q", 5)

	require.NoError(t, err)
	assert.Empty(t, results)
}
