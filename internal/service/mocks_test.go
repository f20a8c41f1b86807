package service

import (
	"context"
	"os"
	"testing"

	"trivia-hub/internal/config"
	"trivia-hub/internal/domain"
	"trivia-hub/internal/logger"

	"github.com/stretchr/testify/mock"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "info", Env: "test"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}

	exitVal := m.Run()

	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- MockQuizRepository ---

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) ListAll(ctx context.Context) ([]domain.Quiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) Insert(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

// --- MockQuestionSource ---

type MockQuestionSource struct {
	mock.Mock
}

func (m *MockQuestionSource) Fetch(ctx context.Context, amount, categoryID int, difficulty domain.Difficulty) ([]domain.Question, error) {
	args := m.Called(ctx, amount, categoryID, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

// fakeSource is a scriptable QuestionSource for the seeding tests: it
// counts every call and delegates to the configured handler.
type fakeSource struct {
	calls   int
	handler func(amount, categoryID int, difficulty domain.Difficulty) ([]domain.Question, error)
}

func (f *fakeSource) Fetch(_ context.Context, amount, categoryID int, difficulty domain.Difficulty) ([]domain.Question, error) {
	f.calls++
	return f.handler(amount, categoryID, difficulty)
}

// questionsOf builds n placeholder questions.
func questionsOf(n int) []domain.Question {
	questions := make([]domain.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, domain.Question{
			ID:               "q",
			Text:             "placeholder",
			CorrectAnswer:    "yes",
			IncorrectAnswers: []string{"no", "maybe", "later"},
			AllAnswers:       []string{"no", "yes", "later", "maybe"},
		})
	}
	return questions
}
