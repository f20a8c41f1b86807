package domain

import (
	"strings"
	"time"
)

// Difficulty is one of the three OpenTriviaDB difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty level.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty normalizes a user-supplied difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", NewInvalidInputError("difficulty must be one of easy, medium, hard")
	}
	return d, nil
}

// Question is a normalized multiple-choice question. AllAnswers holds
// the correct answer and every incorrect answer in an order shuffled
// once at creation time; the order is persisted and never reshuffled.
type Question struct {
	ID               string   `json:"id"`
	Text             string   `json:"question"`
	CorrectAnswer    string   `json:"correctAnswer"`
	IncorrectAnswers []string `json:"incorrectAnswers"`
	AllAnswers       []string `json:"allAnswers"`
}

// UserRef identifies the creator of a quiz. It is either a real user
// or the reserved seed identity.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SeedCreator is the sentinel identity attached to seeded quizzes.
func SeedCreator() UserRef {
	return UserRef{ID: "seed", Name: "Seed"}
}

// Quiz is a named, persisted collection of questions. It is created
// once and immutable afterwards.
type Quiz struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	CategoryID   int        `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	Difficulty   Difficulty `json:"difficulty"`
	Amount       int        `json:"amount"`
	CreatedAt    time.Time  `json:"createdAt"`
	CreatedBy    UserRef    `json:"createdBy"`
	Questions    []Question `json:"questions"`
}

// CreateQuizInput carries the parameters for creating a quiz from the
// question source. Bounds (non-empty title, amount 5-50) are enforced
// at the API boundary, not here.
type CreateQuizInput struct {
	Title      string
	CategoryID int
	Difficulty Difficulty
	Amount     int
}
