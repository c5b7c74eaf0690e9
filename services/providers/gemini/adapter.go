// Package gemini adapts the Gemini API (through its OpenAI-compatible
// surface) to the provider contracts.
package gemini

import (
	"context"
	"fmt"

	"github.com/oceanus-labs/argo-backend/config"
	"github.com/oceanus-labs/argo-backend/services/providers"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Adapter implements providers.ChatModel and providers.Embedder against
// Gemini's OpenAI-compatible endpoint.
type Adapter struct {
	client         *openai.Client
	embeddingModel string
	logger         *zap.Logger
}

// NewAdapter creates a Gemini adapter from configuration.
func NewAdapter(cfg config.GeminiConfig, logger *zap.Logger) *Adapter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &Adapter{
		client:         openai.NewClientWithConfig(clientCfg),
		embeddingModel: cfg.EmbeddingModel,
		logger:         logger,
	}
}

// Generate sends a single-turn prompt to the named model and extracts
// its plain-text output. A response with no choices is not an error;
// it is logged and reported as empty output.
func (a *Adapter) Generate(ctx context.Context, req *providers.GenerateRequest) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		a.logger.Warn("model returned no choices", zap.String("model", req.Model))
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

// EmbedQuery computes an embedding vector for a retrieval query.
func (a *Adapter) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	resp, err := a.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{query},
		Model: openai.EmbeddingModel(a.embeddingModel),
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding response contained no data")
	}

	return resp.Data[0].Embedding, nil
}
