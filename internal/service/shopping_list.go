package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/recipe-builder/backend/internal/metrics"
	"github.com/pageza/recipe-builder/backend/internal/models"
	"github.com/pageza/recipe-builder/backend/internal/repository"
	"github.com/pageza/recipe-builder/backend/internal/types"
)

// ShoppingListService applies ownership rules on top of a ShoppingListStore.
type ShoppingListService struct {
	store   ShoppingListStore
	recipes RecipeFinder
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewShoppingListService(store ShoppingListStore, recipes RecipeFinder, logger *zap.Logger, m *metrics.Metrics) *ShoppingListService {
	return &ShoppingListService{
		store:   store,
		recipes: recipes,
		logger:  logger,
		metrics: m,
	}
}

func (s *ShoppingListService) ListsForUser(ctx context.Context, userID uuid.UUID) ([]models.ShoppingList, error) {
	return s.store.ListsForUser(ctx, userID)
}

func (s *ShoppingListService) CreateList(ctx context.Context, userID uuid.UUID, name string) (*models.ShoppingList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	list := &models.ShoppingList{UserID: userID, Name: name, Items: []models.ShoppingListItem{}}
	if err := s.store.CreateList(ctx, list); err != nil {
		return nil, err
	}
	s.logger.Info("shopping list created", zap.String("list_id", list.ID.String()), zap.String("user_id", userID.String()))
	return list, nil
}

// ownedList returns ErrListNotFound when the list is missing and
// ErrListNotOwned when it belongs to someone else.
func (s *ShoppingListService) ownedList(ctx context.Context, userID, listID uuid.UUID) (*models.ShoppingList, error) {
	list, err := s.store.GetList(ctx, listID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrListNotFound
	}
	if err != nil {
		return nil, err
	}
	if list.UserID != userID {
		return nil, ErrListNotOwned
	}
	return list, nil
}

func (s *ShoppingListService) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return err
	}
	if err := s.store.DeleteList(ctx, listID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrListNotFound
		}
		return err
	}
	return nil
}

// CopyList duplicates a list as "<name> (Copy)" with every item unchecked.
func (s *ShoppingListService) CopyList(ctx context.Context, userID, listID uuid.UUID) (*models.ShoppingList, error) {
	src, err := s.ownedList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}
	return s.store.CopyList(ctx, src, fmt.Sprintf("%s (Copy)", src.Name))
}

func (s *ShoppingListService) AddItem(ctx context.Context, userID uuid.UUID, req *types.AddItemRequest) (*models.ShoppingListItem, error) {
	name := strings.TrimSpace(req.Ingredient)
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, err := s.ownedList(ctx, userID, req.ShoppingListID); err != nil {
		return nil, err
	}

	var quantity *string
	if req.Quantity != nil {
		if q := strings.TrimSpace(*req.Quantity); q != "" {
			quantity = &q
		}
	}
	items := []models.ShoppingListItem{{
		ShoppingListID: req.ShoppingListID,
		Ingredient:     name,
		Quantity:       quantity,
	}}
	if err := s.store.CreateItems(ctx, items); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	return &items[0], nil
}

func (s *ShoppingListService) SetItemChecked(ctx context.Context, userID, itemID uuid.UUID, checked bool) (*models.ShoppingListItem, error) {
	if _, err := s.ownedItem(ctx, userID, itemID); err != nil {
		return nil, err
	}
	item, err := s.store.SetItemChecked(ctx, itemID, checked)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}

func (s *ShoppingListService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if _, err := s.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}
	err := s.store.DeleteItem(ctx, itemID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrItemNotFound
	}
	return err
}

func (s *ShoppingListService) ownedItem(ctx context.Context, userID, itemID uuid.UUID) (*models.ShoppingListItem, error) {
	item, err := s.store.FindItemForUser(ctx, itemID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}

// AddRecipeToList imports every ingredient line of a recipe into one of the
// caller's lists. Persistence errors are returned unmodified.
func (s *ShoppingListService) AddRecipeToList(ctx context.Context, userID, listID, recipeID uuid.UUID) (int, error) {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return 0, err
	}
	recipe, err := s.recipes.GetRecipe(ctx, recipeID)
	if err != nil {
		return 0, err
	}

	n, err := ImportIngredients(ctx, s.store, recipe.Ingredients, listID, recipeID)
	if err != nil {
		s.logger.Error("ingredient import failed",
			zap.String("list_id", listID.String()),
			zap.String("recipe_id", recipeID.String()),
			zap.Error(err))
		return 0, err
	}

	missing := linesWithoutQuantity(recipe.Ingredients)
	if s.metrics != nil {
		s.metrics.ItemsImported.Add(float64(n))
		s.metrics.LinesWithoutQuantity.Add(float64(missing))
	}
	s.logger.Info("recipe imported into shopping list",
		zap.String("list_id", listID.String()),
		zap.String("recipe_id", recipeID.String()),
		zap.Int("created", n),
		zap.Int("without_quantity", missing))
	return n, nil
}
