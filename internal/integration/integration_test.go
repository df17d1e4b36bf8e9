package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/recipe-builder/backend/internal/metrics"
	"github.com/pageza/recipe-builder/backend/internal/repository"
	"github.com/pageza/recipe-builder/backend/internal/router"
	"github.com/pageza/recipe-builder/backend/internal/service"
	"github.com/pageza/recipe-builder/backend/internal/testhelpers"
)

// completionBody wraps a fenced recipe array the way chat models tend to answer.
func completionBody(t *testing.T) []byte {
	t.Helper()
	content := "```json\n" + `[{"title":"Spaghetti Carbonara","description":"Roman classic",` +
		`"ingredients":["400g spaghetti","4 large eggs","Black pepper to taste"],` +
		`"instructions":["Boil pasta"],"prepTime":10,"cookTime":15,"servings":4,` +
		`"difficulty":"beginner","category":"Pasta"}]` + "\n```"
	body, err := json.Marshal(map[string]interface{}{
		"choices": []interface{}{
			map[string]interface{}{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	require.NoError(t, err)
	return body
}

type client struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (c *client) do(method, path string, body interface{}) (int, map[string]interface{}) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func TestRecipeToShoppingListFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	gin.SetMode(gin.TestMode)

	db, _ := testhelpers.SetupPostgres(t)
	rdb := testhelpers.SetupRedis(t)

	var llmCalls atomic.Int32
	reply := completionBody(t)
	llm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llmCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(reply)
	}))
	t.Cleanup(llm.Close)

	logger := zap.NewNop()
	m := metrics.New()
	users := service.NewUserService(db, logger)
	recipes := service.NewRecipeService(db, logger)
	auth := service.NewAuthService(db, "integration-secret", time.Hour, logger)
	lists := repository.NewShoppingListRepository(db)
	generator := service.NewLLMClient("sk-test", llm.URL, "gpt-4o-mini", logger)

	engine := router.SetupRouter(router.Dependencies{
		DB:              db,
		Redis:           rdb,
		Logger:          logger,
		Metrics:         m,
		CORSOrigins:     []string{"http://localhost:3000"},
		SearchRateLimit: 2,
		Auth:            auth,
		Users:           users,
		Recipes:         recipes,
		Search:          service.NewSearchService(generator, users, service.NewRedisSearchCache(rdb), time.Hour, logger, m),
		Images:          service.NewImageService(nil, recipes, logger),
		ShoppingLists:   service.NewShoppingListService(lists, recipes, logger, m),
		Dashboard:       service.NewDashboardService(users, recipes, lists),
		Admin:           service.NewAdminService(db, logger),
	})

	anon := &client{t: t, router: engine}
	status, body := anon.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])

	status, body = anon.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name": "Integration", "email": "cook@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, status)
	user := &client{t: t, router: engine, token: body["token"].(string)}

	// search twice: the second answer comes from redis
	for i := 0; i < 2; i++ {
		status, body = user.do(http.MethodPost, "/api/v1/recipes/search", map[string]string{"query": "carbonara"})
		require.Equal(t, http.StatusOK, status)
		require.Len(t, body["recipes"], 1)
	}
	assert.EqualValues(t, 1, llmCalls.Load())
	suggestion := body["recipes"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "BEGINNER", suggestion["difficulty"])

	status, _ = user.do(http.MethodPost, "/api/v1/recipes/search", map[string]string{"query": "carbonara"})
	assert.Equal(t, http.StatusTooManyRequests, status)

	status, body = user.do(http.MethodPost, "/api/v1/recipes/save", suggestion)
	require.Equal(t, http.StatusCreated, status)
	recipeID := body["recipe"].(map[string]interface{})["id"].(string)

	status, body = user.do(http.MethodGet, "/api/v1/recipes?q=spaghetti", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, body["recipes"])
	assert.Equal(t, recipeID, body["recipes"].([]interface{})[0].(map[string]interface{})["id"])

	status, body = user.do(http.MethodPost, "/api/v1/shopping-lists", map[string]string{"name": "Dinner"})
	require.Equal(t, http.StatusCreated, status)
	listID := body["shopping_list"].(map[string]interface{})["id"].(string)

	status, body = user.do(http.MethodPost, "/api/v1/shopping-lists/add-recipe", map[string]string{
		"recipe_id": recipeID, "shopping_list_id": listID,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.EqualValues(t, 3, body["items_added"])

	status, body = user.do(http.MethodGet, "/api/v1/shopping-lists", nil)
	require.Equal(t, http.StatusOK, status)
	items := body["shopping_lists"].([]interface{})[0].(map[string]interface{})["items"].([]interface{})
	require.Len(t, items, 3)
	assert.Equal(t, "400g spaghetti", items[0].(map[string]interface{})["ingredient"])
	assert.Equal(t, "Black pepper to taste", items[2].(map[string]interface{})["ingredient"])

	status, _ = user.do(http.MethodPost, "/api/v1/recipes/"+recipeID+"/image", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = user.do(http.MethodGet, "/api/v1/admin/stats", nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = anon.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, status)
}
