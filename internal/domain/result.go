package domain

import "time"

// Attempt records one finished play-through of a quiz.
type Attempt struct {
	ID         string    `json:"id"`
	QuizID     string    `json:"quizId"`
	QuizTitle  string    `json:"quizTitle"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Total      int       `json:"total"`
	Correct    int       `json:"correct"`
	Percent    int       `json:"percent"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// UserStats summarizes a user's attempts.
type UserStats struct {
	Attempts       int `json:"attempts"`
	TotalQuestions int `json:"totalQuestions"`
	TotalCorrect   int `json:"totalCorrect"`
	AveragePercent int `json:"averagePercent"`
	BestPercent    int `json:"bestPercent"`
}
