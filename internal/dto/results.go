package dto

import "time"

type RecordAttemptRequest struct {
	QuizID    string    `json:"quizId"`
	Correct   int       `json:"correct"`
	Total     int       `json:"total"`
	StartedAt time.Time `json:"startedAt"`
}
