package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/recipe-builder/backend/internal/models"
	"github.com/pageza/recipe-builder/backend/internal/service"
	"github.com/pageza/recipe-builder/backend/internal/testhelpers"
)

func TestSaveRecipe(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := service.NewRecipeService(db, zap.NewNop())
	ctx := context.Background()
	user := testhelpers.CreateUser(t, db)

	recipe, err := svc.SaveRecipe(ctx, user.ID, &models.Recipe{
		Title:       " Chicken Stir Fry ",
		Ingredients: models.StringList{"500g chicken breast", "2 tbsp soy sauce"},
		Difficulty:  "beginner",
		Category:    "asian",
		IsCustom:    true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, recipe.ID)
	assert.Equal(t, "Chicken Stir Fry", recipe.Title)
	assert.Equal(t, "Asian", recipe.Category)
	assert.Equal(t, models.SkillBeginner, recipe.Difficulty)

	saved, err := svc.ListSaved(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	require.NotNil(t, saved[0].Recipe)
	assert.Equal(t, models.StringList{"500g chicken breast", "2 tbsp soy sauce"}, saved[0].Recipe.Ingredients)

	ok, err := svc.HasSaved(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSaveRecipeRejectsInvalidRecord(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := service.NewRecipeService(db, zap.NewNop())
	user := testhelpers.CreateUser(t, db)

	_, err := svc.SaveRecipe(context.Background(), user.ID, &models.Recipe{Title: "Soup", Difficulty: "EXPERT"})
	assert.ErrorIs(t, err, models.ErrInvalidRecord)

	var count int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListSavedNewestFirstAndDelete(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := service.NewRecipeService(db, zap.NewNop())
	ctx := context.Background()
	user := testhelpers.CreateUser(t, db)
	other := testhelpers.CreateUser(t, db)

	first := testhelpers.SaveRecipe(t, db, user.ID, testhelpers.CreateRecipe(t, db, "1 egg").ID)
	second := testhelpers.SaveRecipe(t, db, user.ID, testhelpers.CreateRecipe(t, db, "2 eggs").ID)
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)

	saved, err := svc.ListSaved(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, second.ID, saved[0].ID)

	assert.ErrorIs(t, svc.DeleteSaved(ctx, other.ID, first.ID), service.ErrSavedRecipeNotFound)
	require.NoError(t, svc.DeleteSaved(ctx, user.ID, first.ID))

	saved, err = svc.ListSaved(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestListRecipesKeywordAndCategory(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := service.NewRecipeService(db, zap.NewNop())
	ctx := context.Background()

	pasta := &models.Recipe{Title: "Easy Spaghetti Bolognese", Category: "Pasta", Ingredients: models.StringList{"400g spaghetti"}}
	pizza := &models.Recipe{Title: "Homemade Pizza", Category: "Italian", Ingredients: models.StringList{"300g flour"}}
	require.NoError(t, db.Create(pasta).Error)
	require.NoError(t, db.Create(pizza).Error)

	got, err := svc.ListRecipes(ctx, "spaghetti", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pasta.ID, got[0].ID)

	got, err = svc.ListRecipes(ctx, "", "italian")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pizza.ID, got[0].ID)

	got, err = svc.ListRecipes(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetRecipeAndSetImageKey(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := service.NewRecipeService(db, zap.NewNop())
	ctx := context.Background()
	recipe := testhelpers.CreateRecipe(t, db, "1 cup rice")

	_, err := svc.GetRecipe(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)

	require.NoError(t, svc.SetImageKey(ctx, recipe.ID, "recipes/x.png"))
	got, err := svc.GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "recipes/x.png", got.ImageKey)

	assert.ErrorIs(t, svc.SetImageKey(ctx, uuid.New(), "k"), service.ErrRecipeNotFound)
}
