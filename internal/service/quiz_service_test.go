package service

import (
	"context"
	"testing"
	"time"

	"trivia-hub/internal/domain"
	"trivia-hub/internal/repository"
	"trivia-hub/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestQuizService(repo domain.QuizRepository, source domain.QuestionSource) *quizService {
	svc := NewQuizService(repo, source).(*quizService)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	n := 0
	svc.newID = func() string {
		n++
		return []string{"quiz-1", "quiz-2", "quiz-3"}[n-1]
	}
	return svc
}

func TestQuizService_CreateFromSource(t *testing.T) {
	source := new(MockQuestionSource)
	repo := repository.NewQuizRepository(store.NewMemoryStore())
	svc := newTestQuizService(repo, source)
	ctx := context.Background()

	questions := questionsOf(10)
	source.On("Fetch", mock.Anything, 10, 18, domain.DifficultyEasy).Return(questions, nil)

	quiz, err := svc.CreateFromSource(ctx, domain.CreateQuizInput{
		Title:      "Computers (easy)",
		CategoryID: 18,
		Difficulty: domain.DifficultyEasy,
		Amount:     10,
	}, domain.SeedCreator())
	require.NoError(t, err)

	assert.Equal(t, "quiz-1", quiz.ID)
	assert.Equal(t, "Computers (easy)", quiz.Title)
	assert.Equal(t, 18, quiz.CategoryID)
	assert.Equal(t, "Computers", quiz.CategoryName)
	assert.Equal(t, domain.DifficultyEasy, quiz.Difficulty)
	assert.Equal(t, 10, quiz.Amount)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), quiz.CreatedAt)
	assert.Equal(t, domain.SeedCreator(), quiz.CreatedBy)
	assert.Len(t, quiz.Questions, 10)

	// The quiz was persisted and is the head of the collection.
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "quiz-1", all[0].ID)

	source.AssertExpectations(t)
}

func TestQuizService_CreateFromSource_ShortfallAccepted(t *testing.T) {
	source := new(MockQuestionSource)
	repo := repository.NewQuizRepository(store.NewMemoryStore())
	svc := newTestQuizService(repo, source)

	// The source returns fewer questions than requested; the quiz
	// keeps what it got.
	source.On("Fetch", mock.Anything, 10, 9, domain.DifficultyHard).Return(questionsOf(6), nil)

	quiz, err := svc.CreateFromSource(context.Background(), domain.CreateQuizInput{
		Title:      "General Knowledge (hard)",
		CategoryID: 9,
		Difficulty: domain.DifficultyHard,
		Amount:     10,
	}, domain.SeedCreator())
	require.NoError(t, err)

	assert.Equal(t, 10, quiz.Amount)
	assert.Len(t, quiz.Questions, 6)
}

func TestQuizService_CreateFromSource_UnknownCategoryName(t *testing.T) {
	source := new(MockQuestionSource)
	repo := repository.NewQuizRepository(store.NewMemoryStore())
	svc := newTestQuizService(repo, source)

	source.On("Fetch", mock.Anything, 5, 999, domain.DifficultyMedium).Return(questionsOf(5), nil)

	quiz, err := svc.CreateFromSource(context.Background(), domain.CreateQuizInput{
		Title:      "Mystery",
		CategoryID: 999,
		Difficulty: domain.DifficultyMedium,
		Amount:     5,
	}, domain.UserRef{ID: "u1", Name: "Ana"})
	require.NoError(t, err)

	assert.Equal(t, "Category 999", quiz.CategoryName)
	assert.Equal(t, domain.UserRef{ID: "u1", Name: "Ana"}, quiz.CreatedBy)
}

func TestQuizService_CreateFromSource_SourceErrorPropagatesUnchanged(t *testing.T) {
	source := new(MockQuestionSource)
	repo := new(MockQuizRepository)
	svc := newTestQuizService(repo, source)

	sourceErr := domain.NewNoResultsError()
	source.On("Fetch", mock.Anything, 10, 14, domain.DifficultyMedium).Return(nil, sourceErr)

	_, err := svc.CreateFromSource(context.Background(), domain.CreateQuizInput{
		Title:      "Television (medium)",
		CategoryID: 14,
		Difficulty: domain.DifficultyMedium,
		Amount:     10,
	}, domain.SeedCreator())

	assert.Same(t, sourceErr, err)

	// Nothing persisted on failure.
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
