package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipe-builder/backend/internal/api"
	"github.com/pageza/recipe-builder/backend/internal/metrics"
	"github.com/pageza/recipe-builder/backend/internal/middleware"
	"github.com/pageza/recipe-builder/backend/internal/service"
)

// Dependencies are the collaborators the HTTP surface is built from.
// Redis may be nil, in which case searches are not rate limited.
type Dependencies struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Logger  *zap.Logger
	Metrics *metrics.Metrics

	CORSOrigins     []string
	SearchRateLimit int

	Auth          service.IAuthService
	Users         service.IUserService
	Recipes       service.IRecipeService
	Search        service.ISearchService
	Images        service.IImageService
	ShoppingLists service.IShoppingListService
	Dashboard     service.IDashboardService
	Admin         service.IAdminService
}

// SetupRouter configures the application routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(deps.Logger),
		middleware.RequestLogger(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(deps.CORSOrigins),
	)

	health := api.NewHealthHandler(deps.DB, deps.Redis)
	router.GET("/health", health.HealthCheck)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(deps.Auth).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Auth))

	var searchLimit gin.HandlerFunc
	if deps.Redis != nil {
		searchLimit = middleware.NewSearchRateLimiter(deps.Redis, deps.SearchRateLimit, deps.Logger).RateLimitMiddleware()
	}

	api.NewRecipeHandler(deps.Recipes, deps.Search, deps.Images, searchLimit).RegisterRoutes(protected)
	api.NewShoppingListHandler(deps.ShoppingLists).RegisterRoutes(protected)
	api.NewUserHandler(deps.Users).RegisterRoutes(protected)
	api.NewDashboardHandler(deps.Dashboard, deps.Admin, middleware.RequireAdmin(deps.Users)).RegisterRoutes(protected)

	return router
}
