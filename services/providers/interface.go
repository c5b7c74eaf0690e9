// Package providers defines the contracts for the external services the
// pipeline depends on: embeddings, the vector index, web search and the
// generative model.
package providers

import "context"

// Embedder computes an embedding vector for a retrieval query.
type Embedder interface {
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}

// GenerateRequest carries one generation call to a chat model.
type GenerateRequest struct {
	Model       string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// ChatModel generates text from an instruction prompt.
type ChatModel interface {
	// Generate returns the model's plain-text output. An empty string
	// with a nil error means the model responded but produced no
	// extractable text.
	Generate(ctx context.Context, req *GenerateRequest) (string, error)
}

// Match is one vector-index neighbor with its similarity score and the
// stored source text.
type Match struct {
	ID    string
	Score float32
	Text  string
}

// VectorIndex queries nearest neighbors for an embedding vector.
type VectorIndex interface {
	Query(ctx context.Context, vector []float32, topK int) ([]Match, error)
}

// SearchResult is one web-search hit.
type SearchResult struct {
	Title   string
	Snippet string
	Link    string
}

// SearchClient performs a safe web search and returns result snippets.
type SearchClient interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
