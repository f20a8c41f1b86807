package service

import (
	"context"
	"time"

	"trivia-hub/internal/domain"
	"trivia-hub/internal/util"
)

// QuizService defines the interface for quiz catalog operations.
type QuizService interface {
	CreateFromSource(ctx context.Context, input domain.CreateQuizInput, creator domain.UserRef) (*domain.Quiz, error)
	GetAll(ctx context.Context) ([]domain.Quiz, error)
	GetByID(ctx context.Context, id string) (*domain.Quiz, error)
	Categories() []domain.Category
}

type quizService struct {
	repo   domain.QuizRepository
	source domain.QuestionSource

	now   func() time.Time
	newID func() string
}

// NewQuizService creates a new instance of QuizService.
func NewQuizService(repo domain.QuizRepository, source domain.QuestionSource) QuizService {
	return &quizService{
		repo:   repo,
		source: source,
		now:    time.Now,
		newID:  util.NewULID,
	}
}

// CreateFromSource materializes a quiz from the question source and
// persists it. Source failures propagate unchanged; the caller decides
// how to react. A source returning fewer questions than requested is
// accepted silently.
func (s *quizService) CreateFromSource(ctx context.Context, input domain.CreateQuizInput, creator domain.UserRef) (*domain.Quiz, error) {
	questions, err := s.source.Fetch(ctx, input.Amount, input.CategoryID, input.Difficulty)
	if err != nil {
		return nil, err
	}

	quiz := &domain.Quiz{
		ID:           s.newID(),
		Title:        input.Title,
		CategoryID:   input.CategoryID,
		CategoryName: domain.CategoryNameByID(input.CategoryID),
		Difficulty:   input.Difficulty,
		Amount:       input.Amount,
		CreatedAt:    s.now(),
		CreatedBy:    creator,
		Questions:    questions,
	}

	if err := s.repo.Insert(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *quizService) GetAll(ctx context.Context) ([]domain.Quiz, error) {
	return s.repo.ListAll(ctx)
}

func (s *quizService) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *quizService) Categories() []domain.Category {
	return domain.Categories
}
