// Package generation produces the final answer text from retrieved
// context and the user's question.
package generation

import (
	"context"
	"strings"

	"github.com/oceanus-labs/argo-backend/internal/retry"
	"github.com/oceanus-labs/argo-backend/services/providers"
	"github.com/oceanus-labs/argo-backend/services/retrieval"
	"go.uber.org/zap"
)

// FallbackAnswer is returned when every model attempt fails or yields
// empty output. The answer path never surfaces an error to the caller.
const FallbackAnswer = "I am currently experiencing high demand and cannot generate a detailed response. Please try again in a moment. For urgent oceanographic data inquiries, I recommend consulting official sources like NOAA or Copernicus."

// ModelDescriptor names one candidate model and its generation
// parameters. Descriptors are tried in order; the list currently holds
// a single entry but the calling contract supports multi-model
// fallback.
type ModelDescriptor struct {
	Name            string
	Temperature     float32
	MaxOutputTokens int
}

// DefaultModels returns the ordered candidate model list.
func DefaultModels() []ModelDescriptor {
	return []ModelDescriptor{
		{Name: "gemini-2.5-flash", Temperature: 0.5, MaxOutputTokens: 2048},
	}
}

// Service generates answers through the candidate model list, retrying
// each model with exponential backoff.
type Service struct {
	chat     providers.ChatModel
	models   []ModelDescriptor
	retryCfg retry.Config
	logger   *zap.Logger
}

// NewService creates an answer generator.
func NewService(chat providers.ChatModel, models []ModelDescriptor, retryCfg retry.Config, logger *zap.Logger) *Service {
	return &Service{
		chat:     chat,
		models:   models,
		retryCfg: retryCfg,
		logger:   logger,
	}
}

// Answer builds the prompt and tries each candidate model in order.
// A model whose retries are exhausted, or that returns empty text, is
// skipped; when no model produces text the static fallback is returned.
func (s *Service) Answer(ctx context.Context, question string, bundle retrieval.ContextBundle) string {
	prompt := BuildPrompt(question, bundle)

	for _, m := range s.models {
		s.logger.Debug("trying model", zap.String("model", m.Name))

		text, err := retry.Do(ctx, s.retryCfg, s.logger, func() (string, error) {
			return s.chat.Generate(ctx, &providers.GenerateRequest{
				Model:       m.Name,
				Prompt:      prompt,
				Temperature: m.Temperature,
				MaxTokens:   m.MaxOutputTokens,
			})
		})
		if err != nil {
			s.logger.Error("model failed after retries",
				zap.String("model", m.Name),
				zap.Error(err))
			continue
		}

		if strings.TrimSpace(text) == "" {
			s.logger.Warn("model produced empty output", zap.String("model", m.Name))
			continue
		}

		s.logger.Info("generated response", zap.String("model", m.Name))
		return text
	}

	s.logger.Warn("all models failed, returning fallback response")
	return FallbackAnswer
}
