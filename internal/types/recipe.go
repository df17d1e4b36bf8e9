package types

import "github.com/pageza/recipe-builder/backend/internal/models"

// RecipeSuggestion is one recipe proposed by the search provider. It has the
// same shape as SaveRecipeRequest so a client can save a suggestion as is.
type RecipeSuggestion struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     int      `json:"prep_time"`
	CookTime     int      `json:"cook_time"`
	Servings     int      `json:"servings"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category"`
}

// SaveRecipeRequest is the body of POST /recipes/save.
type SaveRecipeRequest struct {
	Title        string   `json:"title" binding:"required,max=255"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients" binding:"required"`
	Instructions []string `json:"instructions"`
	PrepTime     int      `json:"prep_time" binding:"gte=0"`
	CookTime     int      `json:"cook_time" binding:"gte=0"`
	Servings     int      `json:"servings" binding:"gte=0"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category"`
}

// ToModel converts the request into an unsaved recipe.
func (r *SaveRecipeRequest) ToModel() *models.Recipe {
	return &models.Recipe{
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  models.StringList(r.Ingredients),
		Instructions: models.StringList(r.Instructions),
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		Difficulty:   r.Difficulty,
		Category:     r.Category,
	}
}

// SearchRecipesRequest is the body of POST /recipes/search.
type SearchRecipesRequest struct {
	Query string `json:"query"`
}

// RecipeImageResponse is returned after an image upload.
type RecipeImageResponse struct {
	RecipeID string `json:"recipe_id"`
	ImageKey string `json:"image_key"`
	ImageURL string `json:"image_url"`
}
