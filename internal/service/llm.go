package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/recipe-builder/backend/internal/types"
)

const (
	suggestionCount   = 5
	searchTemperature = 0.7
)

// SearchPrompt is what the recipe generator needs to know about a search.
type SearchPrompt struct {
	Query               string
	SkillLevel          string
	Conditions          []string
	ExcludedIngredients []string
}

// RecipeGenerator proposes recipes for a search.
type RecipeGenerator interface {
	SuggestRecipes(ctx context.Context, prompt SearchPrompt) ([]types.RecipeSuggestion, error)
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat completion request
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// llmRecipe is the recipe shape the model is asked to produce.
type llmRecipe struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     int      `json:"prepTime"`
	CookTime     int      `json:"cookTime"`
	Servings     int      `json:"servings"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category"`
}

// LLMClient talks to an OpenAI-compatible chat completions endpoint.
type LLMClient struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	logger *zap.Logger
}

// NewLLMClient builds a client for baseURL, e.g. "https://api.openai.com/v1".
func NewLLMClient(apiKey, baseURL, model string, logger *zap.Logger) *LLMClient {
	return &LLMClient{
		apiKey: apiKey,
		apiURL: strings.TrimRight(baseURL, "/") + "/chat/completions",
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
		logger: logger,
	}
}

func buildSearchPrompt(p SearchPrompt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a helpful cooking assistant. Find and return %d recipe suggestions based on this search query: %q.\n\n", suggestionCount, p.Query)
	fmt.Fprintf(&b, "The user's skill level is: %s\n", p.SkillLevel)
	if len(p.Conditions) > 0 {
		fmt.Fprintf(&b, "Every recipe must be suitable for: %s\n", strings.Join(p.Conditions, ", "))
	}
	if len(p.ExcludedIngredients) > 0 {
		fmt.Fprintf(&b, "Never use these ingredients: %s\n", strings.Join(p.ExcludedIngredients, ", "))
	}
	b.WriteString(`
Return the results as a JSON array with the following structure for each recipe:
[
  {
    "title": "Recipe Name",
    "description": "Brief description",
    "ingredients": ["ingredient 1", "ingredient 2"],
    "instructions": ["step 1", "step 2"],
    "prepTime": minutes as number,
    "cookTime": minutes as number,
    "servings": number,
    "difficulty": "BEGINNER" | "INTERMEDIATE" | "ADVANCED",
    "category": "category name"
  }
]
`)
	fmt.Fprintf(&b, "\nMake sure to match recipes appropriate for the %s skill level. Return ONLY the JSON array, no additional text.", p.SkillLevel)
	return b.String()
}

// SuggestRecipes asks the model for recipe suggestions.
func (c *LLMClient) SuggestRecipes(ctx context.Context, prompt SearchPrompt) ([]types.RecipeSuggestion, error) {
	reqBody := Request{
		Model:       c.model,
		Messages:    []Message{{Role: "user", Content: buildSearchPrompt(prompt)}},
		Temperature: searchTemperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("chat completion failed", zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return nil, fmt.Errorf("no content in API response")
	}

	return parseSuggestions(result.Choices[0].Message.Content)
}

// parseSuggestions decodes the model output. Markdown code fences are
// stripped and a {"recipes": [...]} wrapper is accepted as well as a bare array.
func parseSuggestions(content string) ([]types.RecipeSuggestion, error) {
	content = stripCodeFence(content)

	var recipes []llmRecipe
	if err := json.Unmarshal([]byte(content), &recipes); err != nil {
		var wrapper struct {
			Recipes []llmRecipe `json:"recipes"`
		}
		if werr := json.Unmarshal([]byte(content), &wrapper); werr != nil || wrapper.Recipes == nil {
			return nil, fmt.Errorf("failed to parse recipes array: %w", err)
		}
		recipes = wrapper.Recipes
	}

	out := make([]types.RecipeSuggestion, 0, len(recipes))
	for _, r := range recipes {
		if strings.TrimSpace(r.Title) == "" {
			continue
		}
		out = append(out, types.RecipeSuggestion{
			Title:        strings.TrimSpace(r.Title),
			Description:  r.Description,
			Ingredients:  nonNil(r.Ingredients),
			Instructions: nonNil(r.Instructions),
			PrepTime:     r.PrepTime,
			CookTime:     r.CookTime,
			Servings:     r.Servings,
			Difficulty:   strings.ToUpper(strings.TrimSpace(r.Difficulty)),
			Category:     r.Category,
		})
	}
	return out, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop the language tag, e.g. ```json
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
