package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-builder/backend/internal/api"
	"github.com/pageza/recipe-builder/backend/internal/middleware"
	"github.com/pageza/recipe-builder/backend/internal/mocks"
	"github.com/pageza/recipe-builder/backend/internal/service"
	"github.com/pageza/recipe-builder/backend/internal/types"
)

func mockedRouter(t *testing.T, lists service.IShoppingListService, search service.ISearchService) (*gin.Engine, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	validator := new(mocks.MockTokenValidator)
	validator.On("ValidateToken", "token").Return(&types.TokenClaims{UserID: userID, Role: "USER"}, nil)

	r := gin.New()
	protected := r.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(validator))
	api.NewShoppingListHandler(lists).RegisterRoutes(protected)
	api.NewRecipeHandler(nil, search, nil, nil).RegisterRoutes(protected)
	return r, userID
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddRecipeErrorMapping(t *testing.T) {
	listID, recipeID := uuid.New(), uuid.New()
	body := fmt.Sprintf(`{"recipe_id":%q,"shopping_list_id":%q}`, recipeID, listID)

	tests := []struct {
		name   string
		err    error
		status int
		want   string
	}{
		{"not owned", service.ErrListNotOwned, http.StatusNotFound, `{"error":"Shopping list not found"}`},
		{"wrapped recipe error", fmt.Errorf("lookup: %w", service.ErrRecipeNotFound), http.StatusNotFound, `{"error":"Recipe not found"}`},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lists := new(mocks.MockShoppingListService)
			r, userID := mockedRouter(t, lists, nil)
			lists.On("AddRecipeToList", mock.Anything, userID, listID, recipeID).Return(0, tt.err)

			w := postJSON(r, "/api/v1/shopping-lists/add-recipe", body)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
			lists.AssertExpectations(t)
		})
	}
}

func TestSearchPassesUserAndQuery(t *testing.T) {
	search := new(mocks.MockSearchService)
	r, userID := mockedRouter(t, nil, search)
	search.On("Search", mock.Anything, userID, "ramen").
		Return([]types.RecipeSuggestion{{Title: "Shoyu Ramen"}}, nil)

	w := postJSON(r, "/api/v1/recipes/search", `{"query":"ramen"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Shoyu Ramen")
	search.AssertExpectations(t)
}
