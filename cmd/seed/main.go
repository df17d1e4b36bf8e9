package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/pageza/recipe-builder/backend/config"
	"github.com/pageza/recipe-builder/backend/internal/database"
	"github.com/pageza/recipe-builder/backend/internal/logging"
	"github.com/pageza/recipe-builder/backend/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Environment: string(cfg.Environment)})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	dsn := ""
	if cfg.DBDriver == "postgres" {
		dsn = cfg.PostgresDSN()
	}
	if err := database.RunMigrations(db, dsn, logger); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	if err := seed.Run(context.Background(), db, cfg.AdminEmail, cfg.AdminPassword, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("database seeded")
}
