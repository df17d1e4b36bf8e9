package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/recipe-builder/backend/config"
	"github.com/pageza/recipe-builder/backend/internal/database"
	"github.com/pageza/recipe-builder/backend/internal/logging"
	"github.com/pageza/recipe-builder/backend/internal/metrics"
	"github.com/pageza/recipe-builder/backend/internal/repository"
	"github.com/pageza/recipe-builder/backend/internal/router"
	"github.com/pageza/recipe-builder/backend/internal/server"
	"github.com/pageza/recipe-builder/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Environment: string(cfg.Environment),
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	db, err := database.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	dsn := ""
	if cfg.DBDriver == "postgres" {
		dsn = cfg.PostgresDSN()
	}
	if err := database.RunMigrations(db, dsn, logger); err != nil {
		return err
	}

	m := metrics.New()
	users := service.NewUserService(db, logger)
	recipes := service.NewRecipeService(db, logger)
	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL, logger)
	lists := repository.NewShoppingListRepository(db)

	deps := router.Dependencies{
		DB:              db,
		Logger:          logger,
		Metrics:         m,
		CORSOrigins:     cfg.CORSOrigins,
		SearchRateLimit: cfg.SearchRateLimit,
		Auth:            auth,
		Users:           users,
		Recipes:         recipes,
		ShoppingLists:   service.NewShoppingListService(lists, recipes, logger, m),
		Dashboard:       service.NewDashboardService(users, recipes, lists),
		Admin:           service.NewAdminService(db, logger),
	}

	var cache service.SearchCache
	if cfg.RedisEnabled() {
		client, err := database.NewRedisClient(cfg, logger)
		if err != nil {
			return err
		}
		defer client.Close()
		deps.Redis = client
		cache = service.NewRedisSearchCache(client)
	} else {
		logger.Warn("redis not configured, search results are not cached or rate limited")
	}

	generator := service.NewLLMClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger)
	deps.Search = service.NewSearchService(generator, users, cache, cfg.SearchCacheTTL, logger, m)

	// a nil *S3Config must not end up inside the interface
	var store service.ObjectStore
	if cfg.S3Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		s3cfg, err := config.NewS3Config(ctx, cfg)
		cancel()
		if err != nil {
			return err
		}
		store = s3cfg
	} else {
		logger.Warn("S3 bucket not configured, image uploads are disabled")
	}
	deps.Images = service.NewImageService(store, recipes, logger)

	srv := server.New(cfg.Addr(), router.SetupRouter(deps), logger)
	return srv.Run(context.Background())
}
