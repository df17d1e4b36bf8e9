package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipe-builder/backend/internal/api"
	"github.com/pageza/recipe-builder/backend/internal/metrics"
	"github.com/pageza/recipe-builder/backend/internal/middleware"
	"github.com/pageza/recipe-builder/backend/internal/models"
	"github.com/pageza/recipe-builder/backend/internal/repository"
	"github.com/pageza/recipe-builder/backend/internal/service"
	"github.com/pageza/recipe-builder/backend/internal/testhelpers"
	"github.com/pageza/recipe-builder/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeGenerator struct {
	recipes []types.RecipeSuggestion
	err     error
	prompts []service.SearchPrompt
}

func (g *fakeGenerator) SuggestRecipes(ctx context.Context, prompt service.SearchPrompt) ([]types.RecipeSuggestion, error) {
	g.prompts = append(g.prompts, prompt)
	return g.recipes, g.err
}

type testEnv struct {
	db        *gorm.DB
	router    *gin.Engine
	auth      *service.AuthService
	generator *fakeGenerator
	store     *fakeObjectStore
}

type fakeObjectStore struct {
	keys []string
}

func (s *fakeObjectStore) PutObject(ctx context.Context, key, contentType string, body []byte) error {
	s.keys = append(s.keys, key)
	return nil
}

func (s *fakeObjectStore) GeneratePresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return "https://signed.example.com/" + key, nil
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	db := testhelpers.SetupSQLite(t)
	logger := zap.NewNop()
	m := metrics.New()

	auth := service.NewAuthService(db, "test-secret", time.Hour, logger)
	users := service.NewUserService(db, logger)
	recipes := service.NewRecipeService(db, logger)
	listRepo := repository.NewShoppingListRepository(db)
	gen := &fakeGenerator{}
	store := &fakeObjectStore{}

	r := gin.New()
	v1 := r.Group("/api/v1")
	api.NewAuthHandler(auth).RegisterRoutes(v1)
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(auth))
	api.NewRecipeHandler(recipes,
		service.NewSearchService(gen, users, nil, time.Hour, logger, m),
		service.NewImageService(store, recipes, logger),
		nil,
	).RegisterRoutes(protected)
	api.NewShoppingListHandler(service.NewShoppingListService(listRepo, recipes, logger, m)).RegisterRoutes(protected)
	api.NewUserHandler(users).RegisterRoutes(protected)
	api.NewDashboardHandler(
		service.NewDashboardService(users, recipes, listRepo),
		service.NewAdminService(db, logger),
		middleware.RequireAdmin(users),
	).RegisterRoutes(protected)

	return &testEnv{db: db, router: r, auth: auth, generator: gen, store: store}
}

// tokenFor signs a token for u.
func (e *testEnv) tokenFor(t *testing.T, u *models.User) string {
	t.Helper()
	token, err := e.auth.GenerateToken(u)
	require.NoError(t, err)
	return token
}

// do sends body as JSON and decodes a JSON object response.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}
