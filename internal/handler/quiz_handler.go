package handler

import (
	"strings"

	"trivia-hub/internal/domain"
	"trivia-hub/internal/dto"
	"trivia-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz catalog HTTP requests
type QuizHandler struct {
	service service.QuizService
	auth    service.AuthService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, auth service.AuthService) *QuizHandler {
	return &QuizHandler{service: service, auth: auth}
}

// List handles GET /api/quizzes
func (h *QuizHandler) List(c *fiber.Ctx) error {
	quizzes, err := h.service.GetAll(c.Context())
	if err != nil {
		return err
	}

	summaries := make([]dto.QuizSummaryResponse, 0, len(quizzes))
	for i := range quizzes {
		summaries = append(summaries, dto.NewQuizSummaryResponse(&quizzes[i]))
	}
	return c.JSON(summaries)
}

// Get handles GET /api/quizzes/:id
func (h *QuizHandler) Get(c *fiber.Ctx) error {
	quiz, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizResponse(quiz))
}

// Create handles POST /api/quizzes. The boundary enforces the input
// contract the service trusts: non-empty title, known difficulty,
// amount within 5-50, and a logged-in creator.
func (h *QuizHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.NewInvalidInputError("title is required")
	}
	difficulty, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		return err
	}
	if req.Amount < 5 || req.Amount > 50 {
		return domain.NewInvalidInputError("amount must be between 5 and 50")
	}

	user, err := h.auth.Current(c.Context())
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewUnauthorizedError("login required to create a quiz")
	}

	quiz, err := h.service.CreateFromSource(c.Context(), domain.CreateQuizInput{
		Title:      title,
		CategoryID: req.CategoryID,
		Difficulty: difficulty,
		Amount:     req.Amount,
	}, user.Ref())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewQuizResponse(quiz))
}

// Categories handles GET /api/categories
func (h *QuizHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories())
}
