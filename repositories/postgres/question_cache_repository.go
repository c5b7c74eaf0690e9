package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/oceanus-labs/argo-backend/repositories"
	"go.uber.org/zap"
)

// QuestionCacheRepository implements repositories.QuestionCacheRepository
// over the question_cache table.
type QuestionCacheRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewQuestionCacheRepository creates a new question cache repository
func NewQuestionCacheRepository(db *sql.DB, logger *zap.Logger) repositories.QuestionCacheRepository {
	return &QuestionCacheRepository{
		db:     db,
		logger: logger,
	}
}

// GetAnswer retrieves the stored answer for the exact question string
func (r *QuestionCacheRepository) GetAnswer(ctx context.Context, question string) (string, error) {
	query := `SELECT answer FROM question_cache WHERE question = $1`

	var answer string
	err := r.db.QueryRowContext(ctx, query, question).Scan(&answer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repositories.ErrNotFound
		}
		return "", fmt.Errorf("failed to query question cache: %w", err)
	}

	return answer, nil
}

// PutAnswer stores an answer with first-writer-wins semantics: a
// conflicting row is left untouched.
func (r *QuestionCacheRepository) PutAnswer(ctx context.Context, question, answer string) error {
	query := `
		INSERT INTO question_cache (question, answer)
		VALUES ($1, $2)
		ON CONFLICT (question) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, question, answer)
	if err != nil {
		return fmt.Errorf("failed to insert into question cache: %w", err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		r.logger.Debug("question already cached, keeping existing answer")
	}

	return nil
}
