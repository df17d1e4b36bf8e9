package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/recipe-builder/backend/internal/service"
)

const fencedRecipes = "```json\n[\n  {\"title\": \"Mushroom Risotto\", \"description\": \"Creamy rice\", \"ingredients\": [\"300g arborio rice\", \"1 l stock\"], \"instructions\": [\"Toast rice\", \"Add stock\"], \"prepTime\": 10, \"cookTime\": 30, \"servings\": 4, \"difficulty\": \"intermediate\", \"category\": \"Italian\"},\n  {\"title\": \"\", \"ingredients\": []}\n]\n```"

func chatServer(t *testing.T, status int, content string, captured *service.Request) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		if captured != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSuggestRecipes(t *testing.T) {
	var req service.Request
	srv := chatServer(t, http.StatusOK, fencedRecipes, &req)
	client := service.NewLLMClient("sk-test", srv.URL+"/v1/", "gpt-4o-mini", zap.NewNop())

	recipes, err := client.SuggestRecipes(context.Background(), service.SearchPrompt{
		Query:               "risotto",
		SkillLevel:          "INTERMEDIATE",
		Conditions:          []string{"Vegetarian"},
		ExcludedIngredients: []string{"peanuts"},
	})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", req.Model)
	assert.Equal(t, 0.7, req.Temperature)
	require.Len(t, req.Messages, 1)
	prompt := req.Messages[0].Content
	assert.Contains(t, prompt, `"risotto"`)
	assert.Contains(t, prompt, "INTERMEDIATE")
	assert.Contains(t, prompt, "Vegetarian")
	assert.Contains(t, prompt, "peanuts")
	assert.Contains(t, prompt, "5 recipe suggestions")

	// the untitled entry is dropped
	require.Len(t, recipes, 1)
	r := recipes[0]
	assert.Equal(t, "Mushroom Risotto", r.Title)
	assert.Equal(t, []string{"300g arborio rice", "1 l stock"}, r.Ingredients)
	assert.Equal(t, 10, r.PrepTime)
	assert.Equal(t, 30, r.CookTime)
	assert.Equal(t, 4, r.Servings)
	assert.Equal(t, "INTERMEDIATE", r.Difficulty)
}

func TestSuggestRecipesAcceptsWrappedObject(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{"recipes": [{"title": "Toast", "prepTime": 1}]}`, nil)
	client := service.NewLLMClient("sk-test", srv.URL+"/v1", "gpt-4o-mini", zap.NewNop())

	recipes, err := client.SuggestRecipes(context.Background(), service.SearchPrompt{Query: "toast", SkillLevel: "BEGINNER"})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Toast", recipes[0].Title)
	assert.Equal(t, []string{}, recipes[0].Ingredients)
}

func TestSuggestRecipesErrors(t *testing.T) {
	prompt := service.SearchPrompt{Query: "soup", SkillLevel: "BEGINNER"}

	srv := chatServer(t, http.StatusTooManyRequests, "", nil)
	_, err := service.NewLLMClient("sk-test", srv.URL+"/v1", "m", zap.NewNop()).SuggestRecipes(context.Background(), prompt)
	assert.ErrorContains(t, err, "status 429")

	srv = chatServer(t, http.StatusOK, "Sorry, I cannot help with that.", nil)
	_, err = service.NewLLMClient("sk-test", srv.URL+"/v1", "m", zap.NewNop()).SuggestRecipes(context.Background(), prompt)
	assert.ErrorContains(t, err, "failed to parse recipes array")

	srv = chatServer(t, http.StatusOK, "  ", nil)
	_, err = service.NewLLMClient("sk-test", srv.URL+"/v1", "m", zap.NewNop()).SuggestRecipes(context.Background(), prompt)
	assert.ErrorContains(t, err, "no content")
}
