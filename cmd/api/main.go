package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trivia-hub/internal/adapter/opentdb"
	"trivia-hub/internal/config"
	"trivia-hub/internal/domain"
	"trivia-hub/internal/handler"
	"trivia-hub/internal/logger"
	"trivia-hub/internal/middleware"
	"trivia-hub/internal/repository"
	"trivia-hub/internal/service"
	"trivia-hub/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

// newStorage builds the configured storage backend.
func newStorage(cfg *config.Config) (domain.Storage, error) {
	switch cfg.Storage.Backend {
	case "redis":
		client, err := store.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client), nil
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return store.NewFileStore(cfg.Storage.Path), nil
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	storage, err := newStorage(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	appLogger.Info("Storage initialized", zap.String("backend", cfg.Storage.Backend))

	sourceClient := opentdb.NewClient(cfg.OpenTDB.BaseURL, &http.Client{Timeout: cfg.OpenTDB.Timeout})

	// Repositories
	quizRepository := repository.NewQuizRepository(storage)
	userRepository := repository.NewUserRepository(storage)
	attemptRepository := repository.NewAttemptRepository(storage)

	// Services
	quizService := service.NewQuizService(quizRepository, sourceClient)
	authService := service.NewAuthService(userRepository)
	resultsService := service.NewResultsService(attemptRepository)
	seedService := service.NewSeedService(storage, quizService, cfg.Seed)

	// Best-effort baseline catalog before serving. Individual source
	// failures are already suppressed inside the seeding engine.
	if cfg.Seed.Enabled {
		if err := seedService.EnsureSeeded(context.Background()); err != nil {
			appLogger.Warn("Seeding did not complete cleanly", zap.Error(err))
		}
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestLogger())

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	quizHandler := handler.NewQuizHandler(quizService, authService)
	resultsHandler := handler.NewResultsHandler(resultsService, quizService, authService)

	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", authHandler.Me)

	api.Get("/categories", quizHandler.Categories)
	api.Get("/quizzes", quizHandler.List)
	api.Get("/quizzes/:id", quizHandler.Get)
	api.Post("/quizzes", quizHandler.Create)

	api.Post("/results", resultsHandler.Record)
	api.Get("/results", resultsHandler.List)
	api.Get("/stats/:userID", resultsHandler.Stats)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		appLogger.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			appLogger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	appLogger.Info("Starting server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		appLogger.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
