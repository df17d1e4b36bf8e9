package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-builder/backend/internal/models"
	"github.com/pageza/recipe-builder/backend/internal/types"
)

// MockShoppingListService is a mock implementation of the shopping list service
type MockShoppingListService struct {
	mock.Mock
}

func (m *MockShoppingListService) ListsForUser(ctx context.Context, userID uuid.UUID) ([]models.ShoppingList, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) CreateList(ctx context.Context, userID uuid.UUID, name string) (*models.ShoppingList, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	return m.Called(ctx, userID, listID).Error(0)
}

func (m *MockShoppingListService) CopyList(ctx context.Context, userID, listID uuid.UUID) (*models.ShoppingList, error) {
	args := m.Called(ctx, userID, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) AddItem(ctx context.Context, userID uuid.UUID, req *types.AddItemRequest) (*models.ShoppingListItem, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShoppingListItem), args.Error(1)
}

func (m *MockShoppingListService) SetItemChecked(ctx context.Context, userID, itemID uuid.UUID, checked bool) (*models.ShoppingListItem, error) {
	args := m.Called(ctx, userID, itemID, checked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShoppingListItem), args.Error(1)
}

func (m *MockShoppingListService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

// AddRecipeToList mocks the AddRecipeToList method
func (m *MockShoppingListService) AddRecipeToList(ctx context.Context, userID, listID, recipeID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID, listID, recipeID)
	return args.Int(0), args.Error(1)
}
