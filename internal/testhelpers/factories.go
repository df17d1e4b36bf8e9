package testhelpers

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/recipe-builder/backend/internal/models"
)

// TestPassword is the plain-text password of every user built by CreateUser.
const TestPassword = "password123"

var testPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

// CreateUser inserts a user with fake details. Options run before insert.
func CreateUser(t *testing.T, db *gorm.DB, opts ...func(*models.User)) *models.User {
	t.Helper()
	user := &models.User{
		Email:        gofakeit.Email(),
		Name:         gofakeit.Name(),
		PasswordHash: testPasswordHash,
	}
	for _, opt := range opts {
		opt(user)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// AsAdmin makes CreateUser build an admin.
func AsAdmin(u *models.User) {
	u.Role = models.RoleAdmin
}

// CreateRecipe inserts a recipe with the given ingredient lines.
func CreateRecipe(t *testing.T, db *gorm.DB, ingredients ...string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Title:        gofakeit.Dessert(),
		Description:  gofakeit.Sentence(8),
		Ingredients:  models.StringList(ingredients),
		Instructions: models.StringList{gofakeit.Sentence(6), gofakeit.Sentence(6)},
		PrepTime:     gofakeit.Number(5, 30),
		CookTime:     gofakeit.Number(5, 60),
		Servings:     gofakeit.Number(1, 6),
		Difficulty:   models.SkillBeginner,
		Category:     "dessert",
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create recipe: %v", err)
	}
	return recipe
}

// SaveRecipe adds recipe to user's collection.
func SaveRecipe(t *testing.T, db *gorm.DB, userID, recipeID uuid.UUID) *models.SavedRecipe {
	t.Helper()
	saved := &models.SavedRecipe{UserID: userID, RecipeID: recipeID}
	if err := db.Create(saved).Error; err != nil {
		t.Fatalf("failed to save recipe: %v", err)
	}
	return saved
}

// CreateShoppingList inserts a list for userID with one unchecked item per ingredient name.
func CreateShoppingList(t *testing.T, db *gorm.DB, userID uuid.UUID, items ...string) *models.ShoppingList {
	t.Helper()
	list := &models.ShoppingList{UserID: userID, Name: gofakeit.Word() + " groceries"}
	for i, name := range items {
		list.Items = append(list.Items, models.ShoppingListItem{Ingredient: name, Position: i})
	}
	if err := db.Create(list).Error; err != nil {
		t.Fatalf("failed to create shopping list: %v", err)
	}
	return list
}
