package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/recipe-builder/backend/internal/types"
)

// DashboardService assembles the signed-in user's home page.
type DashboardService struct {
	users   UserFinder
	recipes IRecipeService
	lists   ShoppingListStore
}

func NewDashboardService(users UserFinder, recipes IRecipeService, lists ShoppingListStore) *DashboardService {
	return &DashboardService{users: users, recipes: recipes, lists: lists}
}

func (s *DashboardService) Dashboard(ctx context.Context, userID uuid.UUID) (*types.Dashboard, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	saved, err := s.recipes.ListSaved(ctx, userID)
	if err != nil {
		return nil, err
	}
	lists, err := s.lists.ListsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.Dashboard{User: user, SavedRecipes: saved, ShoppingLists: lists}, nil
}
