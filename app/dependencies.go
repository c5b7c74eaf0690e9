// Package app is the central wiring point for dependency injection.
package app

import (
	"context"
	"fmt"

	"github.com/oceanus-labs/argo-backend/config"
	"github.com/oceanus-labs/argo-backend/internal/retry"
	"github.com/oceanus-labs/argo-backend/repositories"
	"github.com/oceanus-labs/argo-backend/repositories/postgres"
	"github.com/oceanus-labs/argo-backend/services/cache"
	"github.com/oceanus-labs/argo-backend/services/chat"
	"github.com/oceanus-labs/argo-backend/services/generation"
	"github.com/oceanus-labs/argo-backend/services/providers/gemini"
	"github.com/oceanus-labs/argo-backend/services/providers/pinecone"
	"github.com/oceanus-labs/argo-backend/services/providers/websearch"
	"github.com/oceanus-labs/argo-backend/services/relevance"
	"github.com/oceanus-labs/argo-backend/services/retrieval"
	"github.com/oceanus-labs/argo-backend/services/topicgate"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *postgres.DB
	Logger *zap.Logger

	// Repositories
	QuestionCache repositories.QuestionCacheRepository

	// Services
	ChatService *chat.Service
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initDatabase(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	deps.initServices(cfg)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initDatabase opens the PostgreSQL pool and bootstraps the question
// cache schema.
func (d *Dependencies) initDatabase(ctx context.Context, cfg *config.Config) error {
	db, err := postgres.NewDB(cfg.Database, d.Logger)
	if err != nil {
		return err
	}
	d.DB = db

	if err := db.InitSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	d.QuestionCache = postgres.NewQuestionCacheRepository(db.DB, d.Logger)
	return nil
}

// initServices wires the answer pipeline: providers, gate, retrieval,
// generation, cache gateway and the controller itself.
func (d *Dependencies) initServices(cfg *config.Config) {
	geminiAdapter := gemini.NewAdapter(cfg.Gemini, d.Logger)
	vectorIndex := pinecone.NewClient(cfg.Pinecone, d.Logger)
	searchClient := websearch.NewClient(cfg.Search, d.Logger)
	if !cfg.Search.Enabled() {
		d.Logger.Warn("web search not configured, fallback retrieval disabled")
	}

	gate := topicgate.NewGate(topicgate.DefaultVocabulary(), d.Logger)
	filter := relevance.NewFilter(relevance.DefaultTermSets(), d.Logger)
	orchestrator := retrieval.NewOrchestrator(geminiAdapter, vectorIndex, searchClient, filter, d.Logger)

	generator := generation.NewService(geminiAdapter, generation.DefaultModels(), retry.DefaultConfig(), d.Logger)
	gateway := cache.NewGateway(d.QuestionCache, d.Logger)

	d.ChatService = chat.NewService(gateway, gate, orchestrator, generator, chat.NewSessionStore(), d.Logger)
	d.Logger.Info("services initialized")
}

// Close releases held resources.
func (d *Dependencies) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
