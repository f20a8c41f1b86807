package handler

import (
	"trivia-hub/internal/domain"
	"trivia-hub/internal/dto"
	"trivia-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ResultsHandler handles quiz attempt HTTP requests
type ResultsHandler struct {
	service service.ResultsService
	quizzes service.QuizService
	auth    service.AuthService
}

// NewResultsHandler creates a new ResultsHandler instance
func NewResultsHandler(service service.ResultsService, quizzes service.QuizService, auth service.AuthService) *ResultsHandler {
	return &ResultsHandler{service: service, quizzes: quizzes, auth: auth}
}

// Record handles POST /api/results. The quiz title and user identity
// are denormalized into the attempt at record time.
func (h *ResultsHandler) Record(c *fiber.Ctx) error {
	var req dto.RecordAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if req.Total <= 0 || req.Correct < 0 || req.Correct > req.Total {
		return domain.NewInvalidInputError("correct/total out of range")
	}

	user, err := h.auth.Current(c.Context())
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewUnauthorizedError("login required to record a result")
	}

	quiz, err := h.quizzes.GetByID(c.Context(), req.QuizID)
	if err != nil {
		return err
	}

	attempt, err := h.service.Record(c.Context(), domain.Attempt{
		QuizID:    quiz.ID,
		QuizTitle: quiz.Title,
		UserID:    user.ID,
		UserName:  user.Name,
		Total:     req.Total,
		Correct:   req.Correct,
		StartedAt: req.StartedAt,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(attempt)
}

// List handles GET /api/results with an optional user_id filter
func (h *ResultsHandler) List(c *fiber.Ctx) error {
	if userID := c.Query("user_id"); userID != "" {
		attempts, err := h.service.ListByUser(c.Context(), userID)
		if err != nil {
			return err
		}
		return c.JSON(attempts)
	}

	attempts, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(attempts)
}

// Stats handles GET /api/stats/:userID
func (h *ResultsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.UserStats(c.Context(), c.Params("userID"))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
