package repositories

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a cache lookup finds no row for the key.
var ErrNotFound = errors.New("not found")

// QuestionCacheRepository persists answered questions keyed by the exact
// question text.
type QuestionCacheRepository interface {
	// GetAnswer returns the stored answer for the exact question string,
	// or ErrNotFound when no row exists.
	GetAnswer(ctx context.Context, question string) (string, error)

	// PutAnswer stores an answer with insert-if-absent semantics: an
	// existing row for the same question is left untouched.
	PutAnswer(ctx context.Context, question, answer string) error
}
