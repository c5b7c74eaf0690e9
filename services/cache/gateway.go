// Package cache implements the cache-aside gateway around the question
// cache store. Store failures never block the answer path.
package cache

import (
	"context"
	"errors"

	"github.com/oceanus-labs/argo-backend/repositories"
	"go.uber.org/zap"
)

// Gateway is a stateless façade over the question cache repository.
type Gateway struct {
	repo   repositories.QuestionCacheRepository
	logger *zap.Logger
}

// NewGateway creates a cache gateway.
func NewGateway(repo repositories.QuestionCacheRepository, logger *zap.Logger) *Gateway {
	return &Gateway{
		repo:   repo,
		logger: logger,
	}
}

// Get looks up the answer for the exact question string. Any store
// error is logged and reported as a miss.
func (g *Gateway) Get(ctx context.Context, question string) (string, bool) {
	answer, err := g.repo.GetAnswer(ctx, question)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			g.logger.Error("cache lookup failed, treating as miss", zap.Error(err))
		}
		return "", false
	}

	g.logger.Info("cache hit, returning stored answer")
	return answer, true
}

// Put stores the answer with insert-if-absent semantics. Any store
// error is logged and swallowed; a cache-write failure must never fail
// or alter the returned answer.
func (g *Gateway) Put(ctx context.Context, question, answer string) {
	if err := g.repo.PutAnswer(ctx, question, answer); err != nil {
		g.logger.Error("cache store failed, continuing", zap.Error(err))
	}
}
