package service

import (
	"context"
	"math"
	"time"

	"trivia-hub/internal/domain"
	"trivia-hub/internal/util"
)

// ResultsService defines the interface for recording and querying
// quiz attempts.
type ResultsService interface {
	Record(ctx context.Context, attempt domain.Attempt) (*domain.Attempt, error)
	ListAll(ctx context.Context) ([]domain.Attempt, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Attempt, error)
	UserStats(ctx context.Context, userID string) (*domain.UserStats, error)
}

type resultsService struct {
	attempts domain.AttemptRepository

	now   func() time.Time
	newID func() string
}

// NewResultsService creates a new instance of ResultsService.
func NewResultsService(attempts domain.AttemptRepository) ResultsService {
	return &resultsService{
		attempts: attempts,
		now:      time.Now,
		newID:    util.NewULID,
	}
}

// Record assigns the attempt an id, derives the percent score and
// persists it.
func (s *resultsService) Record(ctx context.Context, attempt domain.Attempt) (*domain.Attempt, error) {
	attempt.ID = s.newID()
	attempt.Percent = percent(attempt.Correct, attempt.Total)
	if attempt.FinishedAt.IsZero() {
		attempt.FinishedAt = s.now()
	}

	if err := s.attempts.Insert(ctx, &attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (s *resultsService) ListAll(ctx context.Context) ([]domain.Attempt, error) {
	return s.attempts.ListAll(ctx)
}

func (s *resultsService) ListByUser(ctx context.Context, userID string) ([]domain.Attempt, error) {
	return s.attempts.ListByUser(ctx, userID)
}

// UserStats aggregates a user's attempts into totals and percent
// summaries.
func (s *resultsService) UserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	attempts, err := s.attempts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &domain.UserStats{Attempts: len(attempts)}
	percentSum := 0
	for _, a := range attempts {
		stats.TotalQuestions += a.Total
		stats.TotalCorrect += a.Correct
		percentSum += a.Percent
		if a.Percent > stats.BestPercent {
			stats.BestPercent = a.Percent
		}
	}
	if len(attempts) > 0 {
		stats.AveragePercent = int(math.Round(float64(percentSum) / float64(len(attempts))))
	}
	return stats, nil
}

func percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
