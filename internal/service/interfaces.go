package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/recipe-builder/backend/internal/models"
	"github.com/pageza/recipe-builder/backend/internal/types"
)

// ItemCreator persists shopping-list items. CreateItems must store every
// item or none of them.
type ItemCreator interface {
	CreateItems(ctx context.Context, items []models.ShoppingListItem) error
}

// ShoppingListStore is the persistence boundary of the shopping lists service.
type ShoppingListStore interface {
	ItemCreator
	CreateList(ctx context.Context, list *models.ShoppingList) error
	GetList(ctx context.Context, id uuid.UUID) (*models.ShoppingList, error)
	ListsForUser(ctx context.Context, userID uuid.UUID) ([]models.ShoppingList, error)
	DeleteList(ctx context.Context, id uuid.UUID) error
	CopyList(ctx context.Context, src *models.ShoppingList, name string) (*models.ShoppingList, error)
	FindItemForUser(ctx context.Context, itemID, userID uuid.UUID) (*models.ShoppingListItem, error)
	SetItemChecked(ctx context.Context, itemID uuid.UUID, checked bool) (*models.ShoppingListItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

// RecipeFinder loads a recipe by id.
type RecipeFinder interface {
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(user *models.User) (string, error)
}

// IUserService defines the interface for settings and onboarding
type IUserService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, req *types.UpdateSettingsRequest) (*models.User, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, req *types.OnboardingRequest) (*models.User, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	RecipeFinder
	ListRecipes(ctx context.Context, query, category string) ([]models.Recipe, error)
	SaveRecipe(ctx context.Context, userID uuid.UUID, recipe *models.Recipe) (*models.Recipe, error)
	ListSaved(ctx context.Context, userID uuid.UUID) ([]models.SavedRecipe, error)
	DeleteSaved(ctx context.Context, userID, savedID uuid.UUID) error
	HasSaved(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	SetImageKey(ctx context.Context, recipeID uuid.UUID, key string) error
}

// IShoppingListService defines the interface for shopping list operations
type IShoppingListService interface {
	ListsForUser(ctx context.Context, userID uuid.UUID) ([]models.ShoppingList, error)
	CreateList(ctx context.Context, userID uuid.UUID, name string) (*models.ShoppingList, error)
	DeleteList(ctx context.Context, userID, listID uuid.UUID) error
	CopyList(ctx context.Context, userID, listID uuid.UUID) (*models.ShoppingList, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *types.AddItemRequest) (*models.ShoppingListItem, error)
	SetItemChecked(ctx context.Context, userID, itemID uuid.UUID, checked bool) (*models.ShoppingListItem, error)
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error
	AddRecipeToList(ctx context.Context, userID, listID, recipeID uuid.UUID) (int, error)
}

// ISearchService defines the interface for recipe search
type ISearchService interface {
	Search(ctx context.Context, userID uuid.UUID, query string) ([]types.RecipeSuggestion, error)
}

// IImageService defines the interface for recipe image storage
type IImageService interface {
	Upload(ctx context.Context, recipeID uuid.UUID, contentType string, data []byte) (*types.RecipeImageResponse, error)
}

// IAdminService defines the interface for admin reporting
type IAdminService interface {
	Stats(ctx context.Context) (*types.AdminStats, error)
}

// IDashboardService defines the interface for the user dashboard
type IDashboardService interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*types.Dashboard, error)
}

var (
	_ IAuthService         = (*AuthService)(nil)
	_ IUserService         = (*UserService)(nil)
	_ IRecipeService       = (*RecipeService)(nil)
	_ IShoppingListService = (*ShoppingListService)(nil)
	_ ISearchService       = (*SearchService)(nil)
	_ IImageService        = (*ImageService)(nil)
	_ IAdminService        = (*AdminService)(nil)
	_ IDashboardService    = (*DashboardService)(nil)
)
