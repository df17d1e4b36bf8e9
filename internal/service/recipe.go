package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/recipe-builder/backend/internal/embedding"
	"github.com/pageza/recipe-builder/backend/internal/models"
)

const catalogLimit = 50

type RecipeService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewRecipeService(db *gorm.DB, logger *zap.Logger) *RecipeService {
	return &RecipeService{db: db, logger: logger}
}

func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// ListRecipes browses the catalog. With a query, postgres orders recipes by
// embedding distance while other databases fall back to keyword matching.
func (s *RecipeService) ListRecipes(ctx context.Context, query, category string) ([]models.Recipe, error) {
	db := s.db.WithContext(ctx).Model(&models.Recipe{})

	if category = strings.TrimSpace(category); category != "" {
		db = db.Where("LOWER(category) = ?", strings.ToLower(category))
	}

	query = strings.TrimSpace(query)
	switch {
	case query == "":
		db = db.Order("created_at DESC")
	case s.db.Dialector.Name() == "postgres":
		vec := embedding.Generate(query)
		db = db.Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
		})
	default:
		like := "%" + strings.ToLower(query) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients) LIKE ?", like, like, like).
			Order("created_at DESC")
	}

	var recipes []models.Recipe
	if err := db.Limit(catalogLimit).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// SaveRecipe stores a new recipe and adds it to the user's collection in one
// transaction.
func (s *RecipeService) SaveRecipe(ctx context.Context, userID uuid.UUID, recipe *models.Recipe) (*models.Recipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return tx.Create(&models.SavedRecipe{UserID: userID, RecipeID: recipe.ID}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}
	s.logger.Info("recipe saved", zap.String("recipe_id", recipe.ID.String()), zap.String("user_id", userID.String()))
	return recipe, nil
}

// ListSaved returns the user's collection, most recently saved first.
func (s *RecipeService) ListSaved(ctx context.Context, userID uuid.UUID) ([]models.SavedRecipe, error) {
	saved := []models.SavedRecipe{}
	err := s.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list saved recipes: %w", err)
	}
	return saved, nil
}

func (s *RecipeService) DeleteSaved(ctx context.Context, userID, savedID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", savedID, userID).
		Delete(&models.SavedRecipe{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete saved recipe: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSavedRecipeNotFound
	}
	return nil
}

func (s *RecipeService) HasSaved(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.SavedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to check saved recipe: %w", err)
	}
	return n > 0, nil
}

// SetImageKey records the storage key of a recipe's image without touching
// the rest of the record.
func (s *RecipeService) SetImageKey(ctx context.Context, recipeID uuid.UUID, key string) error {
	res := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		UpdateColumn("image_key", key)
	if res.Error != nil {
		return fmt.Errorf("failed to set recipe image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}
