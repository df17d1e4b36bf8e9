package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipe-builder/backend/internal/models"
	"github.com/pageza/recipe-builder/backend/internal/types"
)

const recentLimit = 10

// AdminService aggregates the numbers shown on the admin dashboard.
type AdminService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewAdminService(db *gorm.DB, logger *zap.Logger) *AdminService {
	return &AdminService{db: db, logger: logger}
}

func (s *AdminService) Stats(ctx context.Context) (*types.AdminStats, error) {
	db := s.db.WithContext(ctx)
	stats := &types.AdminStats{
		RecentUsers:   []types.UserSummary{},
		RecentRecipes: []types.RecipeSummary{},
	}

	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := db.Model(&models.Recipe{}).Count(&stats.TotalRecipes).Error; err != nil {
		return nil, fmt.Errorf("failed to count recipes: %w", err)
	}
	if err := db.Model(&models.ShoppingList{}).Count(&stats.TotalShoppingLists).Error; err != nil {
		return nil, fmt.Errorf("failed to count shopping lists: %w", err)
	}

	err := db.Model(&models.User{}).
		Select("users.id, users.name, users.email, users.role, users.skill_level, users.created_at, COUNT(saved_recipes.id) AS saved_recipes").
		Joins("LEFT JOIN saved_recipes ON saved_recipes.user_id = users.id").
		Group("users.id, users.name, users.email, users.role, users.skill_level, users.created_at").
		Order("users.created_at DESC").
		Limit(recentLimit).
		Scan(&stats.RecentUsers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent users: %w", err)
	}

	err = db.Model(&models.Recipe{}).
		Select("recipes.id, recipes.title, recipes.category, recipes.difficulty, recipes.is_custom, recipes.created_at, COUNT(saved_recipes.id) AS saved_by").
		Joins("LEFT JOIN saved_recipes ON saved_recipes.recipe_id = recipes.id").
		Group("recipes.id, recipes.title, recipes.category, recipes.difficulty, recipes.is_custom, recipes.created_at").
		Order("recipes.created_at DESC").
		Limit(recentLimit).
		Scan(&stats.RecentRecipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent recipes: %w", err)
	}

	return stats, nil
}
