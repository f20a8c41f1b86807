package dto

import (
	"time"

	"trivia-hub/internal/domain"
)

type CreateQuizRequest struct {
	Title      string `json:"title"`
	CategoryID int    `json:"categoryId"`
	Difficulty string `json:"difficulty"`
	Amount     int    `json:"amount"`
}

// QuizSummaryResponse is the list view of a quiz: metadata without the
// question bodies.
type QuizSummaryResponse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	CategoryID    int            `json:"categoryId"`
	CategoryName  string         `json:"categoryName"`
	Difficulty    string         `json:"difficulty"`
	Amount        int            `json:"amount"`
	QuestionCount int            `json:"questionCount"`
	CreatedAt     time.Time      `json:"createdAt"`
	CreatedBy     domain.UserRef `json:"createdBy"`
}

func NewQuizSummaryResponse(q *domain.Quiz) QuizSummaryResponse {
	return QuizSummaryResponse{
		ID:            q.ID,
		Title:         q.Title,
		CategoryID:    q.CategoryID,
		CategoryName:  q.CategoryName,
		Difficulty:    string(q.Difficulty),
		Amount:        q.Amount,
		QuestionCount: len(q.Questions),
		CreatedAt:     q.CreatedAt,
		CreatedBy:     q.CreatedBy,
	}
}

// QuizResponse is the detail view: the full quiz including questions.
// The correct answer is included; grading happens on the client, as in
// the original application.
type QuizResponse struct {
	QuizSummaryResponse
	Questions []domain.Question `json:"questions"`
}

func NewQuizResponse(q *domain.Quiz) QuizResponse {
	return QuizResponse{
		QuizSummaryResponse: NewQuizSummaryResponse(q),
		Questions:           q.Questions,
	}
}
