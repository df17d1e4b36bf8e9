// Package seed loads the admin account and the starter recipe catalog.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/recipe-builder/backend/internal/models"
)

// Recipes is the starter catalog. Recipes are matched by title so seeding
// twice does not duplicate them.
var Recipes = []models.Recipe{
	{
		Title:       "Easy Spaghetti Bolognese",
		Description: "A classic Italian pasta dish that kids and adults love!",
		Ingredients: models.StringList{
			"400g spaghetti",
			"500g ground beef",
			"1 onion, diced",
			"2 garlic cloves, minced",
			"800g canned tomatoes",
			"Salt and pepper to taste",
			"Parmesan cheese for serving",
		},
		Instructions: models.StringList{
			"Cook spaghetti according to package directions",
			"Brown the ground beef in a large pan",
			"Add onion and garlic, cook until soft",
			"Add canned tomatoes and simmer for 20 minutes",
			"Season with salt and pepper",
			"Serve over spaghetti with parmesan cheese",
		},
		PrepTime:   15,
		CookTime:   30,
		Servings:   4,
		Difficulty: models.SkillBeginner,
		Category:   "Pasta",
	},
	{
		Title:       "Chicken Stir Fry",
		Description: "A quick and healthy dinner packed with vegetables",
		Ingredients: models.StringList{
			"500g chicken breast, sliced",
			"2 cups mixed vegetables",
			"3 tbsp soy sauce",
			"2 tbsp vegetable oil",
			"1 tbsp ginger, minced",
			"2 garlic cloves, minced",
			"Rice for serving",
		},
		Instructions: models.StringList{
			"Heat oil in a wok or large pan",
			"Cook chicken until browned",
			"Add vegetables, ginger, and garlic",
			"Stir fry for 5 minutes",
			"Add soy sauce and cook for 2 more minutes",
			"Serve over rice",
		},
		PrepTime:   10,
		CookTime:   15,
		Servings:   4,
		Difficulty: models.SkillBeginner,
		Category:   "Asian",
	},
	{
		Title:       "Homemade Pizza",
		Description: "Make your own delicious pizza from scratch!",
		Ingredients: models.StringList{
			"500g pizza dough",
			"200ml pizza sauce",
			"300g mozzarella cheese",
			"Your favorite toppings",
			"Olive oil",
			"Italian herbs",
		},
		Instructions: models.StringList{
			"Preheat oven to 220°C (425°F)",
			"Roll out pizza dough",
			"Spread pizza sauce evenly",
			"Add cheese and toppings",
			"Drizzle with olive oil",
			"Bake for 12-15 minutes until golden",
		},
		PrepTime:   20,
		CookTime:   15,
		Servings:   2,
		Difficulty: models.SkillIntermediate,
		Category:   "Italian",
	},
}

// Run creates the admin user and the starter recipes when they are missing.
func Run(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string, logger *zap.Logger) error {
	db = db.WithContext(ctx)
	if err := ensureAdmin(db, adminEmail, adminPassword, logger); err != nil {
		return err
	}
	for _, r := range Recipes {
		if err := ensureRecipe(db, r, logger); err != nil {
			return err
		}
	}
	return nil
}

func ensureAdmin(db *gorm.DB, email, password string, logger *zap.Logger) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return errors.New("admin email and password are required")
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		logger.Info("admin user already exists", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &models.User{
		Email:        email,
		Name:         "Admin User",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	logger.Info("admin user created", zap.String("email", email))
	return nil
}

func ensureRecipe(db *gorm.DB, r models.Recipe, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Recipe{}).Where("title = ?", r.Title).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up recipe %q: %w", r.Title, err)
	}
	if count > 0 {
		return nil
	}
	if err := db.Create(&r).Error; err != nil {
		return fmt.Errorf("failed to create recipe %q: %w", r.Title, err)
	}
	logger.Info("recipe created", zap.String("title", r.Title))
	return nil
}
