package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oceanus-labs/argo-backend/app"
	"github.com/oceanus-labs/argo-backend/config"
	"github.com/oceanus-labs/argo-backend/services/chat"
	"github.com/oceanus-labs/argo-backend/services/retrieval"
	"github.com/oceanus-labs/argo-backend/services/topicgate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type noopCache struct{}

func (noopCache) Get(ctx context.Context, question string) (string, bool) { return "", false }
func (noopCache) Put(ctx context.Context, question, answer string)        {}

type onTopicGate struct{}

func (onTopicGate) Classify(string) topicgate.Decision { return topicgate.OnTopic }

type emptyRetriever struct{}

func (emptyRetriever) Retrieve(ctx context.Context, question, normalizedQuery string) retrieval.Outcome {
	return retrieval.Outcome{Bundle: retrieval.ContextBundle{Source: retrieval.SourceNone}}
}

type cannedGenerator struct{ reply string }

func (g cannedGenerator) Answer(ctx context.Context, question string, bundle retrieval.ContextBundle) string {
	return g.reply
}

func testDeps(t *testing.T) *app.Dependencies {
	t.Helper()
	logger := zaptest.NewLogger(t)
	svc := chat.NewService(noopCache{}, onTopicGate{}, emptyRetriever{}, cannedGenerator{reply: "canned"}, chat.NewSessionStore(), logger)
	return &app.Dependencies{
		Config: &config.Config{
			Environment: "test",
			CORS:        config.CORSConfig{AllowedOrigin: "http://localhost:5000"},
		},
		Logger:      logger,
		ChatService: svc,
	}
}

func TestRoutes_Status(t *testing.T) {
	ts := httptest.NewServer(SetupRoutes(testDeps(t)))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ARGO chatbot backend is running", body["message"])
}

func TestRoutes_Liveness(t *testing.T) {
	ts := httptest.NewServer(SetupRoutes(testDeps(t)))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutes_Chat(t *testing.T) {
	ts := httptest.NewServer(SetupRoutes(testDeps(t)))
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/chat", "application/json",
		strings.NewReader(`{"message":"What is the salinity of the Pacific Ocean?"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "canned", body["reply"])
}

func TestRoutes_ChatEmptyMessage(t *testing.T) {
	ts := httptest.NewServer(SetupRoutes(testDeps(t)))
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/chat", "application/json", strings.NewReader(`{"message":""}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoutes_NotFound(t *testing.T) {
	ts := httptest.NewServer(SetupRoutes(testDeps(t)))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/nonexistent")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoutes_CORSPreflight(t *testing.T) {
	ts := httptest.NewServer(SetupRoutes(testDeps(t)))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/chat", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:5000", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRoutes_CORSDisallowedOrigin(t *testing.T) {
	ts := httptest.NewServer(SetupRoutes(testDeps(t)))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/chat", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
