package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipe-builder/backend/internal/models"
	"github.com/pageza/recipe-builder/backend/internal/types"
)

// UserService manages the caller's settings and onboarding answers.
type UserService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewUserService(db *gorm.DB, logger *zap.Logger) *UserService {
	return &UserService{db: db, logger: logger}
}

func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateSettings applies the non-nil fields of req. The whole record is saved
// so the model hooks validate the result.
func (s *UserService) UpdateSettings(ctx context.Context, userID uuid.UUID, req *types.UpdateSettingsRequest) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.SkillLevel != nil {
		level := strings.ToUpper(strings.TrimSpace(*req.SkillLevel))
		if !models.IsSkillLevel(level) {
			return nil, ErrInvalidSkillLevel
		}
		user.SkillLevel = level
	}
	if req.FavoriteDishes != nil {
		user.FavoriteDishes = trimAll(req.FavoriteDishes)
	}
	if req.DefaultServings != nil {
		user.DefaultServings = *req.DefaultServings
	}
	if req.DietaryRestrictions != nil {
		user.DietaryRestrictions = models.DietaryRestrictions{
			Conditions:          trimAll(req.DietaryRestrictions.Conditions),
			ExcludedIngredients: trimAll(req.DietaryRestrictions.ExcludedIngredients),
		}
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return user, nil
}

// CompleteOnboarding records the onboarding answers and marks it done.
func (s *UserService) CompleteOnboarding(ctx context.Context, userID uuid.UUID, req *types.OnboardingRequest) (*models.User, error) {
	level := strings.ToUpper(strings.TrimSpace(req.SkillLevel))
	if !models.IsSkillLevel(level) {
		return nil, ErrInvalidSkillLevel
	}
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.SkillLevel = level
	user.FavoriteDishes = trimAll(req.FavoriteDishes)
	user.OnboardedAt = &now

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to complete onboarding: %w", err)
	}
	s.logger.Info("onboarding completed", zap.String("user_id", userID.String()), zap.String("skill_level", level))
	return user, nil
}

// trimAll trims each value and drops the empty ones.
func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
