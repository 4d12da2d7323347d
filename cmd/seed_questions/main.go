package main

import (
	"context"
	"fmt"
	"os"

	"umatter/internal/assessment"
	"umatter/internal/config"
	"umatter/internal/database"
	"umatter/internal/logger"
	"umatter/internal/repository"

	"go.uber.org/zap"
)

// Seeds the questions table from the bundled question catalog. Safe to run
// against an empty schema only; existing rows make the inserts fail on the
// primary key.
func main() {
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

	log.Info("Starting question seeding process")

	catalog, err := assessment.BundledCatalog()
	if err != nil {
		log.Fatal("Failed to load bundled question catalog", zap.Error(err))
	}

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewQuestionDatabaseAdapter(db)
	seeded := 0
	for _, question := range catalog.All() {
		q := question
		if err := repo.SaveQuestion(ctx, &q); err != nil {
			log.Error("Failed to seed question",
				zap.Int64("id", q.ID), zap.String("category", string(q.Category)), zap.Error(err))
			continue
		}
		seeded++
	}

	log.Info("Question seeding completed",
		zap.Int("seeded", seeded), zap.Int("total", catalog.Len()))
}
