package database_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/recipe-builder/backend/config"
	"github.com/pageza/recipe-builder/backend/internal/database"
	"github.com/pageza/recipe-builder/backend/internal/models"
	"github.com/pageza/recipe-builder/backend/internal/testhelpers"
)

func TestOpenSQLiteMigrates(t *testing.T) {
	db := testhelpers.SetupSQLite(t)

	for _, m := range database.AllModels() {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.NoError(t, database.HealthCheck(context.Background(), db))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := database.Open(&config.Config{DBDriver: "oracle"}, zap.NewNop())
	assert.Error(t, err)
}

func TestForeignKeyViolationSQLite(t *testing.T) {
	db := testhelpers.SetupSQLite(t)

	err := db.Create(&models.ShoppingListItem{
		ShoppingListID: uuid.New(),
		Ingredient:     "milk",
	}).Error
	require.Error(t, err)
	assert.True(t, database.IsForeignKeyViolation(err))
	assert.False(t, database.IsUniqueViolation(err))
}

func TestUniqueViolationSQLite(t *testing.T) {
	db := testhelpers.SetupSQLite(t)

	user := testhelpers.CreateUser(t, db)
	dup := &models.User{Email: user.Email, PasswordHash: "x"}
	err := db.Create(dup).Error
	require.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err))
	assert.False(t, database.IsForeignKeyViolation(err))
}

func TestErrorClassifiersIgnoreOtherErrors(t *testing.T) {
	assert.False(t, database.IsForeignKeyViolation(nil))
	assert.False(t, database.IsUniqueViolation(context.Canceled))
}

func TestPostgresMigrationsAndConstraints(t *testing.T) {
	db, dsn := testhelpers.SetupPostgres(t)

	// applying again is a no-op
	require.NoError(t, database.MigratePostgres(dsn, zap.NewNop()))

	err := db.Create(&models.ShoppingListItem{
		ShoppingListID: uuid.New(),
		Ingredient:     "milk",
	}).Error
	require.Error(t, err)
	assert.True(t, database.IsForeignKeyViolation(err))

	recipe := testhelpers.CreateRecipe(t, db, "400g spaghetti")
	var loaded models.Recipe
	require.NoError(t, db.First(&loaded, "id = ?", recipe.ID).Error)
	assert.Equal(t, models.StringList{"400g spaghetti"}, loaded.Ingredients)
	assert.Equal(t, "Dessert", loaded.Category)
}
