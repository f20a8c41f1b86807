package repository

import (
	"context"

	"trivia-hub/internal/domain"
	"trivia-hub/internal/store"
)

// attemptRepository persists quiz attempts as a single JSON document,
// newest attempt first.
type attemptRepository struct {
	storage domain.Storage
}

// NewAttemptRepository creates an attempt repository over the given
// storage.
func NewAttemptRepository(storage domain.Storage) domain.AttemptRepository {
	return &attemptRepository{storage: storage}
}

// ListAll returns attempts newest first. A missing or corrupt document
// reads as an empty collection.
func (r *attemptRepository) ListAll(ctx context.Context) ([]domain.Attempt, error) {
	var attempts []domain.Attempt
	ok, err := r.storage.Get(ctx, store.KeyResults, &attempts)
	if err != nil || !ok {
		return []domain.Attempt{}, nil
	}
	return attempts, nil
}

func (r *attemptRepository) ListByUser(ctx context.Context, userID string) ([]domain.Attempt, error) {
	attempts, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Attempt, 0, len(attempts))
	for _, a := range attempts {
		if a.UserID == userID {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// Insert prepends the attempt and persists the full collection.
func (r *attemptRepository) Insert(ctx context.Context, attempt *domain.Attempt) error {
	attempts, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	updated := append([]domain.Attempt{*attempt}, attempts...)
	if err := r.storage.Set(ctx, store.KeyResults, updated); err != nil {
		return domain.NewInternalError("failed to persist attempt collection", err)
	}
	return nil
}
