package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/pageza/recipe-builder/backend/config"
	"github.com/pageza/recipe-builder/backend/internal/database"
	"github.com/pageza/recipe-builder/backend/internal/logging"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Environment: string(cfg.Environment)})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if cfg.DBDriver != "postgres" {
		logger.Fatal("migrations only apply to postgres; sqlite is auto-migrated at startup", zap.String("driver", cfg.DBDriver))
	}

	if *rollback {
		if err := database.RollbackPostgres(cfg.PostgresDSN()); err != nil {
			logger.Fatal("rollback failed", zap.Error(err))
		}
		logger.Info("rolled back last migration")
		return
	}
	if err := database.MigratePostgres(cfg.PostgresDSN(), logger); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
}
