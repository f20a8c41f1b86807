package repository

import (
	"context"

	"trivia-hub/internal/domain"
	"trivia-hub/internal/store"
)

// quizRepository persists the quiz collection as a single JSON
// document, newest quiz first.
type quizRepository struct {
	storage domain.Storage
}

// NewQuizRepository creates a quiz repository over the given storage.
func NewQuizRepository(storage domain.Storage) domain.QuizRepository {
	return &quizRepository{storage: storage}
}

// ListAll returns the quizzes in insertion order (newest first). A
// missing or corrupt document reads as an empty collection.
func (r *quizRepository) ListAll(ctx context.Context) ([]domain.Quiz, error) {
	var quizzes []domain.Quiz
	ok, err := r.storage.Get(ctx, store.KeyQuizzes, &quizzes)
	if err != nil || !ok {
		return []domain.Quiz{}, nil
	}
	return quizzes, nil
}

func (r *quizRepository) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	quizzes, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quizzes {
		if quizzes[i].ID == id {
			return &quizzes[i], nil
		}
	}
	return nil, domain.NewQuizNotFoundError(id)
}

// Insert prepends the quiz and persists the full collection.
func (r *quizRepository) Insert(ctx context.Context, quiz *domain.Quiz) error {
	quizzes, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	updated := append([]domain.Quiz{*quiz}, quizzes...)
	if err := r.storage.Set(ctx, store.KeyQuizzes, updated); err != nil {
		return domain.NewInternalError("failed to persist quiz collection", err)
	}
	return nil
}
