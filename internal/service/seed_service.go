package service

import (
	"context"
	"fmt"
	"strings"

	"trivia-hub/internal/config"
	"trivia-hub/internal/domain"
	"trivia-hub/internal/logger"
	"trivia-hub/internal/store"

	"go.uber.org/zap"
)

// seedAmounts is the descending fallback sequence tried per
// combination when the source has too few questions at the preferred
// amount.
var seedAmounts = []int{10, 9, 8, 7, 6, 5}

var difficultyRotation = []domain.Difficulty{
	domain.DifficultyEasy,
	domain.DifficultyMedium,
	domain.DifficultyHard,
}

const (
	defaultSeedTarget         = 20
	defaultSeedMaxExtraRounds = 3
)

// SeedService populates a baseline quiz catalog on first use. Seeding
// is best-effort: source failures are suppressed, and the completion
// marker guarantees bounded work per application lifetime.
type SeedService interface {
	EnsureSeeded(ctx context.Context) error
	Reset(ctx context.Context) error
	Seeded(ctx context.Context) bool
}

type seedService struct {
	storage domain.Storage
	quizzes QuizService

	target         int
	maxExtraRounds int
}

// NewSeedService creates a new instance of SeedService.
func NewSeedService(storage domain.Storage, quizzes QuizService, cfg config.SeedConfig) SeedService {
	target := cfg.Target
	if target <= 0 {
		target = defaultSeedTarget
	}
	maxExtraRounds := cfg.MaxExtraRounds
	if maxExtraRounds < 0 {
		maxExtraRounds = defaultSeedMaxExtraRounds
	}
	return &seedService{
		storage:        storage,
		quizzes:        quizzes,
		target:         target,
		maxExtraRounds: maxExtraRounds,
	}
}

// EnsureSeeded runs the seeding passes unless the completion marker is
// already set. One coverage pass attempts every known category with a
// rotated difficulty; extra rounds with a shifted rotation run while
// the catalog is below target. The marker is set regardless of the
// outcome, so seeding happens at most once until Reset.
func (s *seedService) EnsureSeeded(ctx context.Context) error {
	if s.Seeded(ctx) {
		logger.Get().Debug("Seed marker already set, skipping seeding")
		return nil
	}

	log := logger.Get()
	log.Info("Seeding baseline quiz catalog",
		zap.Int("categories", len(domain.Categories)),
		zap.Int("target", s.target),
	)

	// Coverage pass: at least attempt every category once.
	for i, cat := range domain.Categories {
		s.tryCreateWithFallback(ctx, cat, pickDifficulty(i))
	}

	// Extra rounds with a shifted difficulty rotation until the
	// catalog reaches the target count.
	total := s.count(ctx)
	for round := 1; round <= s.maxExtraRounds && total < s.target; round++ {
		for i, cat := range domain.Categories {
			if total >= s.target {
				break
			}
			if s.tryCreateWithFallback(ctx, cat, pickDifficulty(i+round)) {
				total = s.count(ctx)
			}
		}
	}

	if err := s.storage.Set(ctx, store.KeySeedDone, true); err != nil {
		return domain.NewInternalError("failed to persist seed marker", err)
	}

	log.Info("Seeding completed", zap.Int("total_quizzes", s.count(ctx)))
	return nil
}

// Reset clears the completion marker so the next EnsureSeeded call
// runs again. Not exposed to end users; used for recovery and tests.
func (s *seedService) Reset(ctx context.Context) error {
	if err := s.storage.Remove(ctx, store.KeySeedDone); err != nil {
		return domain.NewInternalError("failed to clear seed marker", err)
	}
	return nil
}

func (s *seedService) Seeded(ctx context.Context) bool {
	var done bool
	ok, err := s.storage.Get(ctx, store.KeySeedDone, &done)
	return err == nil && ok && done
}

// tryCreateWithFallback attempts to create the quiz for one
// (category, difficulty) combination, walking the descending amount
// sequence. An existing quiz with the combination's deterministic
// title counts as satisfied. Returns true when the combination is
// covered, false when every amount failed (the combination is skipped,
// never an error).
func (s *seedService) tryCreateWithFallback(ctx context.Context, cat domain.Category, difficulty domain.Difficulty) bool {
	title := fmt.Sprintf("%s (%s)", cat.Name, difficulty)

	if s.titleExists(ctx, title) {
		return true
	}

	log := logger.Get()
	for _, amount := range seedAmounts {
		_, err := s.quizzes.CreateFromSource(ctx, domain.CreateQuizInput{
			Title:      title,
			CategoryID: cat.ID,
			Difficulty: difficulty,
			Amount:     amount,
		}, domain.SeedCreator())
		if err == nil {
			log.Debug("Seeded quiz",
				zap.String("title", title),
				zap.Int("amount", amount),
			)
			return true
		}
		log.Debug("Seed attempt failed",
			zap.String("title", title),
			zap.Int("amount", amount),
			zap.Error(err),
		)
	}

	log.Debug("Skipping combination, no amount succeeded", zap.String("title", title))
	return false
}

func (s *seedService) titleExists(ctx context.Context, title string) bool {
	quizzes, err := s.quizzes.GetAll(ctx)
	if err != nil {
		return false
	}
	for _, q := range quizzes {
		if strings.EqualFold(q.Title, title) {
			return true
		}
	}
	return false
}

func (s *seedService) count(ctx context.Context) int {
	quizzes, err := s.quizzes.GetAll(ctx)
	if err != nil {
		return 0
	}
	return len(quizzes)
}

func pickDifficulty(index int) domain.Difficulty {
	return difficultyRotation[index%len(difficultyRotation)]
}
