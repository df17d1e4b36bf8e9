package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/recipe-builder/backend/internal/models"
)

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UpdateSettingsRequest is a partial update; nil fields are left unchanged.
type UpdateSettingsRequest struct {
	Name                *string                     `json:"name"`
	SkillLevel          *string                     `json:"skill_level"`
	FavoriteDishes      []string                    `json:"favorite_dishes"`
	DefaultServings     *int                        `json:"default_servings"`
	DietaryRestrictions *models.DietaryRestrictions `json:"dietary_restrictions"`
}

// OnboardingRequest is the body of POST /onboarding.
type OnboardingRequest struct {
	SkillLevel     string   `json:"skill_level" binding:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	FavoriteDishes []string `json:"favorite_dishes" binding:"required,max=20,dive,required,max=100"`
}

// CreateShoppingListRequest is the body of POST /shopping-lists.
type CreateShoppingListRequest struct {
	Name string `json:"name"`
}

// AddItemRequest is the body of POST /shopping-lists/items.
type AddItemRequest struct {
	ShoppingListID uuid.UUID `json:"shopping_list_id"`
	Ingredient     string    `json:"ingredient"`
	Quantity       *string   `json:"quantity"`
}

// UpdateItemRequest is the body of PATCH /shopping-lists/items/:id.
type UpdateItemRequest struct {
	Checked *bool `json:"checked"`
}

// AddRecipeToListRequest is the body of POST /shopping-lists/add-recipe.
type AddRecipeToListRequest struct {
	RecipeID       uuid.UUID `json:"recipe_id"`
	ShoppingListID uuid.UUID `json:"shopping_list_id"`
}

// AdminStats is the admin dashboard payload.
type AdminStats struct {
	TotalUsers         int64          `json:"total_users"`
	TotalRecipes       int64          `json:"total_recipes"`
	TotalShoppingLists int64          `json:"total_shopping_lists"`
	RecentUsers        []UserSummary  `json:"recent_users"`
	RecentRecipes      []RecipeSummary `json:"recent_recipes"`
}

// UserSummary is a user row on the admin dashboard.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	SkillLevel   string    `json:"skill_level"`
	CreatedAt    time.Time `json:"created_at"`
	SavedRecipes int64     `json:"saved_recipes"`
}

// RecipeSummary is a recipe row on the admin dashboard.
type RecipeSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Difficulty string    `json:"difficulty"`
	IsCustom   bool      `json:"is_custom"`
	CreatedAt  time.Time `json:"created_at"`
	SavedBy    int64     `json:"saved_by"`
}

// Dashboard is the signed-in user's home payload.
type Dashboard struct {
	User          *models.User          `json:"user"`
	SavedRecipes  []models.SavedRecipe  `json:"saved_recipes"`
	ShoppingLists []models.ShoppingList `json:"shopping_lists"`
}
