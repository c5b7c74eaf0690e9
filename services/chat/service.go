// Package chat sequences the gate, retrieval, generation and cache
// stages into the end-to-end answer pipeline.
package chat

import (
	"context"

	"github.com/oceanus-labs/argo-backend/services/generation"
	"github.com/oceanus-labs/argo-backend/services/query"
	"github.com/oceanus-labs/argo-backend/services/retrieval"
	"github.com/oceanus-labs/argo-backend/services/topicgate"
	"go.uber.org/zap"
)

// CacheGateway is the cache-aside surface the pipeline reads and
// writes. Failures never propagate; a miss and an error look the same.
type CacheGateway interface {
	Get(ctx context.Context, question string) (string, bool)
	Put(ctx context.Context, question, answer string)
}

// TopicGate classifies a question before any retrieval happens.
type TopicGate interface {
	Classify(question string) topicgate.Decision
}

// Retriever gathers grounding context for an on-topic question.
type Retriever interface {
	Retrieve(ctx context.Context, question, normalizedQuery string) retrieval.Outcome
}

// Generator produces the final answer text. It never fails; exhausted
// models yield the static fallback.
type Generator interface {
	Answer(ctx context.Context, question string, bundle retrieval.ContextBundle) string
}

// Service is the pipeline controller. One instance serves all sessions.
type Service struct {
	cache     CacheGateway
	gate      TopicGate
	retriever Retriever
	generator Generator
	sessions  *SessionStore
	logger    *zap.Logger
}

// NewService wires the pipeline stages together.
func NewService(cache CacheGateway, gate TopicGate, retriever Retriever, generator Generator, sessions *SessionStore, logger *zap.Logger) *Service {
	return &Service{
		cache:     cache,
		gate:      gate,
		retriever: retriever,
		generator: generator,
		sessions:  sessions,
		logger:    logger,
	}
}

// Respond runs the full pipeline for one question and always returns a
// user-visible answer. The method is the outermost failure boundary: a
// panic anywhere below is recovered and converted to the static
// fallback answer.
func (s *Service) Respond(ctx context.Context, sessionID, question string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("pipeline panicked, returning fallback",
				zap.Any("panic", r),
				zap.String("session_id", sessionID))
			answer = generation.FallbackAnswer
			s.sessions.AppendExchange(sessionID, question, answer)
		}
	}()

	// Cache hits bypass the whole pipeline and the conversation log.
	if cached, ok := s.cache.Get(ctx, question); ok {
		return cached
	}

	switch s.gate.Classify(question) {
	case topicgate.Greeting:
		s.logger.Info("greeting detected")
		answer = topicgate.GreetingReply
		s.sessions.AppendExchange(sessionID, question, answer)
		return answer
	case topicgate.OffTopic:
		s.logger.Info("off-topic question declined")
		answer = topicgate.DeclineReply
		s.sessions.AppendExchange(sessionID, question, answer)
		return answer
	}

	normalized := query.Normalize(question)
	s.logger.Info("processing question",
		zap.String("normalized_query", normalized),
		zap.String("session_id", sessionID))

	outcome := s.retriever.Retrieve(ctx, question, normalized)
	for _, step := range outcome.Steps {
		s.logger.Debug("retrieval step",
			zap.String("step", step.Step),
			zap.Bool("used", step.Used),
			zap.String("detail", step.Detail))
	}

	answer = s.generator.Answer(ctx, question, outcome.Bundle)

	s.sessions.AppendExchange(sessionID, question, answer)
	s.cache.Put(ctx, question, answer)

	return answer
}
