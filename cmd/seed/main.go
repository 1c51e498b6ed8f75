package main

// Load the built-in question bank into the database:
//   go run ./cmd/seed
//
// Seeding is idempotent; questions already present are left untouched.

import (
	"context"
	"log"
	"os"

	"geowiz-backend/internal/questions"
	"geowiz-backend/internal/shared/config"
	"geowiz-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	repo := &questions.PGRepo{DB: sqlDB}
	if err := questions.Seed(ctx, repo); err != nil {
		log.Printf("failed to seed questions: %v", err)
		os.Exit(1)
	}
	log.Printf("seeded %d questions", len(questions.SeedQuestions()))
}
