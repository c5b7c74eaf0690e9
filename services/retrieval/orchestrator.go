// Package retrieval assembles grounding context for a question, trying
// the internal vector index first and falling back to web search.
package retrieval

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/oceanus-labs/argo-backend/services/providers"
	"go.uber.org/zap"
)

const (
	// topK nearest neighbors requested from the vector index.
	topK = 5
	// scoreThreshold drops weak vector matches.
	scoreThreshold = 0.5
	// searchResultLimit requested from the web-search fallback.
	searchResultLimit = 5
	// snippetLimit bounds how many search results feed the prompt.
	snippetLimit = 3
	// searchBias steers the open web query toward the domain.
	searchBias = "oceanography ocean data"
	// snippetSeparator joins formatted search blocks.
	snippetSeparator = "\n\n---\n\n"

	stepVectorIndex = "vector_index"
	stepWebSearch   = "web_search"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// RelevanceFilter decides whether candidate context is usable for a
// question.
type RelevanceFilter interface {
	IsRelevant(question, context string) bool
}

// Orchestrator sequences the retrieval steps, short-circuiting on the
// first usable context. Step failures degrade, they never propagate.
type Orchestrator struct {
	embedder providers.Embedder
	index    providers.VectorIndex
	search   providers.SearchClient
	filter   RelevanceFilter
	logger   *zap.Logger
}

// NewOrchestrator creates a retrieval orchestrator.
func NewOrchestrator(
	embedder providers.Embedder,
	index providers.VectorIndex,
	search providers.SearchClient,
	filter RelevanceFilter,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		embedder: embedder,
		index:    index,
		search:   search,
		filter:   filter,
		logger:   logger,
	}
}

// Retrieve produces the context bundle for the question. The internal
// vector index is preferred; web search is a fallback only; both
// failing yields an empty bundle, never an error.
func (o *Orchestrator) Retrieve(ctx context.Context, question, normalizedQuery string) Outcome {
	outcome := Outcome{Bundle: ContextBundle{Source: SourceNone}}

	text, err := o.fromVectorIndex(ctx, question, normalizedQuery)
	if err != nil {
		o.logger.Warn("vector index retrieval failed, falling back", zap.Error(err))
		outcome.Steps = append(outcome.Steps, StepResult{Step: stepVectorIndex, Detail: err.Error()})
	} else {
		outcome.Steps = append(outcome.Steps, StepResult{Step: stepVectorIndex, Used: true})
		outcome.Bundle = ContextBundle{Text: text, Source: SourceInternalDatabase}
		return outcome
	}

	text, err = o.fromWebSearch(ctx, normalizedQuery)
	if err != nil {
		o.logger.Warn("web search retrieval failed", zap.Error(err))
		outcome.Steps = append(outcome.Steps, StepResult{Step: stepWebSearch, Detail: err.Error()})
		return outcome
	}

	outcome.Steps = append(outcome.Steps, StepResult{Step: stepWebSearch, Used: true})
	outcome.Bundle = ContextBundle{Text: text, Source: SourceExternalSearch}
	return outcome
}

// fromVectorIndex embeds the query, fetches nearest neighbors, keeps
// strong matches and runs the combined text through the relevance
// filter.
func (o *Orchestrator) fromVectorIndex(ctx context.Context, question, normalizedQuery string) (string, error) {
	vector, err := o.embedder.EmbedQuery(ctx, normalizedQuery)
	if err != nil {
		return "", fmt.Errorf("embedding failed: %w", err)
	}

	matches, err := o.index.Query(ctx, vector, topK)
	if err != nil {
		return "", fmt.Errorf("vector query failed: %w", err)
	}

	var parts []string
	for _, m := range matches {
		if m.Score > scoreThreshold && m.Text != "" {
			parts = append(parts, m.Text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no matches above score %.1f", scoreThreshold)
	}

	candidate := strings.Join(parts, "\n\n")
	if !o.filter.IsRelevant(question, candidate) {
		return "", fmt.Errorf("candidate context rejected by relevance filter")
	}

	o.logger.Debug("using vector index context", zap.Int("matches", len(parts)))
	return candidate, nil
}

// fromWebSearch queries the open web with the domain-biased query and
// formats the top snippets.
func (o *Orchestrator) fromWebSearch(ctx context.Context, normalizedQuery string) (string, error) {
	results, err := o.search.Search(ctx, normalizedQuery+" "+searchBias, searchResultLimit)
	if err != nil {
		return "", fmt.Errorf("web search failed: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("web search returned no results")
	}

	if len(results) > snippetLimit {
		results = results[:snippetLimit]
	}

	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fmt.Sprintf("Title: %s\nSnippet: %s", r.Title, cleanSnippet(r.Snippet)))
	}

	o.logger.Debug("using web search context", zap.Int("snippets", len(blocks)))
	return strings.Join(blocks, snippetSeparator), nil
}

// cleanSnippet strips ellipsis markers and collapses whitespace.
func cleanSnippet(s string) string {
	s = strings.ReplaceAll(s, "...", "")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
