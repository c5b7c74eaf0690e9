package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/oceanus-labs/argo-backend/services/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEmbedder struct {
	vector []float32
	err    error
	calls  int
}

func (s *stubEmbedder) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	s.calls++
	return s.vector, s.err
}

type stubIndex struct {
	matches []providers.Match
	err     error
}

func (s *stubIndex) Query(ctx context.Context, vector []float32, topK int) ([]providers.Match, error) {
	return s.matches, s.err
}

type stubSearch struct {
	results   []providers.SearchResult
	err       error
	lastQuery string
	calls     int
}

func (s *stubSearch) Search(ctx context.Context, query string, limit int) ([]providers.SearchResult, error) {
	s.calls++
	s.lastQuery = query
	return s.results, s.err
}

type stubFilter struct {
	relevant bool
	lastText string
}

func (s *stubFilter) IsRelevant(question, context string) bool {
	s.lastText = context
	return s.relevant
}

func newOrchestrator(e *stubEmbedder, i *stubIndex, s *stubSearch, f *stubFilter) *Orchestrator {
	return NewOrchestrator(e, i, s, f, zap.NewNop())
}

func TestRetrieve_VectorIndexPreferred(t *testing.T) {
	embedder := &stubEmbedder{vector: []float32{0.1}}
	index := &stubIndex{matches: []providers.Match{
		{ID: "a", Score: 0.9, Text: "Pacific salinity averages 35 PSU."},
		{ID: "b", Score: 0.3, Text: "weak match, dropped"},
		{ID: "c", Score: 0.7, Text: "Salinity varies with depth and latitude."},
	}}
	search := &stubSearch{}
	filter := &stubFilter{relevant: true}

	outcome := newOrchestrator(embedder, index, search, filter).
		Retrieve(context.Background(), "What is pacific salinity?", "what is pacific salinity")

	assert.Equal(t, SourceInternalDatabase, outcome.Bundle.Source)
	assert.Equal(t, "Pacific salinity averages 35 PSU.\n\nSalinity varies with depth and latitude.", outcome.Bundle.Text)
	assert.Equal(t, 0, search.calls, "web search must not run when the index succeeds")
	assert.Equal(t, filter.lastText, outcome.Bundle.Text)
	require.Len(t, outcome.Steps, 1)
	assert.True(t, outcome.Steps[0].Used)
}

func TestRetrieve_FilterRejectionFallsBackToSearch(t *testing.T) {
	embedder := &stubEmbedder{vector: []float32{0.1}}
	index := &stubIndex{matches: []providers.Match{{ID: "a", Score: 0.9, Text: "off-topic stored text"}}}
	search := &stubSearch{results: []providers.SearchResult{
		{Title: "Ocean Currents", Snippet: "The  gulf   stream... carries warm water..."},
	}}
	filter := &stubFilter{relevant: false}

	outcome := newOrchestrator(embedder, index, search, filter).
		Retrieve(context.Background(), "question", "question")

	assert.Equal(t, SourceExternalSearch, outcome.Bundle.Source)
	assert.Equal(t, "Title: Ocean Currents\nSnippet: The gulf stream carries warm water", outcome.Bundle.Text)
	assert.Equal(t, "question oceanography ocean data", search.lastQuery)
}

func TestRetrieve_EmbeddingFailureFallsBack(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("embedding service down")}
	search := &stubSearch{results: []providers.SearchResult{{Title: "T", Snippet: "S"}}}

	outcome := newOrchestrator(embedder, &stubIndex{}, search, &stubFilter{relevant: true}).
		Retrieve(context.Background(), "q", "q")

	assert.Equal(t, SourceExternalSearch, outcome.Bundle.Source)
	require.Len(t, outcome.Steps, 2)
	assert.False(t, outcome.Steps[0].Used)
	assert.Contains(t, outcome.Steps[0].Detail, "embedding failed")
	assert.True(t, outcome.Steps[1].Used)
}

func TestRetrieve_AllStepsFailYieldEmptyBundle(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("down")}
	search := &stubSearch{err: errors.New("quota exceeded")}

	outcome := newOrchestrator(embedder, &stubIndex{}, search, &stubFilter{}).
		Retrieve(context.Background(), "q", "q")

	assert.Equal(t, SourceNone, outcome.Bundle.Source)
	assert.Empty(t, outcome.Bundle.Text)
	require.Len(t, outcome.Steps, 2)
	assert.False(t, outcome.Steps[0].Used)
	assert.False(t, outcome.Steps[1].Used)
}

func TestRetrieve_NoStrongMatchesFallsBack(t *testing.T) {
	embedder := &stubEmbedder{vector: []float32{0.1}}
	index := &stubIndex{matches: []providers.Match{{ID: "a", Score: 0.5, Text: "exactly at threshold is excluded"}}}
	search := &stubSearch{results: []providers.SearchResult{{Title: "T", Snippet: "S"}}}

	outcome := newOrchestrator(embedder, index, search, &stubFilter{relevant: true}).
		Retrieve(context.Background(), "q", "q")

	assert.Equal(t, SourceExternalSearch, outcome.Bundle.Source)
}

func TestRetrieve_SearchLimitedToTopThreeSnippets(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("down")}
	search := &stubSearch{results: []providers.SearchResult{
		{Title: "1", Snippet: "a"}, {Title: "2", Snippet: "b"},
		{Title: "3", Snippet: "c"}, {Title: "4", Snippet: "d"}, {Title: "5", Snippet: "e"},
	}}

	outcome := newOrchestrator(embedder, &stubIndex{}, search, &stubFilter{}).
		Retrieve(context.Background(), "q", "q")

	assert.NotContains(t, outcome.Bundle.Text, "Title: 4")
	assert.Contains(t, outcome.Bundle.Text, "Title: 3")
	assert.Equal(t, 2, len(splitBlocks(outcome.Bundle.Text)))
}

func splitBlocks(s string) []int {
	var idx []int
	for i := 0; i+len(snippetSeparator) <= len(s); i++ {
		if s[i:i+len(snippetSeparator)] == snippetSeparator {
			idx = append(idx, i)
		}
	}
	return idx
}

func TestSourceLabels(t *testing.T) {
	assert.Equal(t, "Internal Database", SourceInternalDatabase.Label())
	assert.Equal(t, "External Search", SourceExternalSearch.Label())
	assert.Equal(t, "None", SourceNone.Label())
}
