package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"trivia-hub/internal/adapter/opentdb"
	"trivia-hub/internal/config"
	"trivia-hub/internal/domain"
	"trivia-hub/internal/logger"
	"trivia-hub/internal/repository"
	"trivia-hub/internal/service"
	"trivia-hub/internal/store"

	"go.uber.org/zap"
)

func main() {
	reset := flag.Bool("reset", false, "clear the seed completion marker before seeding")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	var storage domain.Storage
	switch cfg.Storage.Backend {
	case "redis":
		client, err := store.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		storage = store.NewRedisStore(client)
	case "memory":
		log.Fatal("Seeding a memory store is pointless, use file or redis")
	default:
		storage = store.NewFileStore(cfg.Storage.Path)
	}

	sourceClient := opentdb.NewClient(cfg.OpenTDB.BaseURL, &http.Client{Timeout: cfg.OpenTDB.Timeout})
	quizService := service.NewQuizService(repository.NewQuizRepository(storage), sourceClient)
	seedService := service.NewSeedService(storage, quizService, cfg.Seed)

	if *reset {
		if err := seedService.Reset(ctx); err != nil {
			log.Fatal("Failed to reset seed marker", zap.Error(err))
		}
		log.Info("Seed marker cleared")
	}

	log.Info("Starting catalog seeding...")
	if err := seedService.EnsureSeeded(ctx); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	quizzes, err := quizService.GetAll(ctx)
	if err != nil {
		log.Fatal("Failed to list quizzes", zap.Error(err))
	}
	log.Info("Catalog seeding completed", zap.Int("total_quizzes", len(quizzes)))
}
