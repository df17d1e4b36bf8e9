package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipe-builder/backend/internal/metrics"
	"github.com/pageza/recipe-builder/backend/internal/repository"
	"github.com/pageza/recipe-builder/backend/internal/service"
	"github.com/pageza/recipe-builder/backend/internal/testhelpers"
	"github.com/pageza/recipe-builder/backend/internal/types"
)

func strPtr(s string) *string { return &s }

func setupShoppingLists(t *testing.T) (*gorm.DB, *service.ShoppingListService, *metrics.Metrics) {
	t.Helper()
	db := testhelpers.SetupSQLite(t)
	m := metrics.New()
	svc := service.NewShoppingListService(
		repository.NewShoppingListRepository(db),
		service.NewRecipeService(db, zap.NewNop()),
		zap.NewNop(),
		m,
	)
	return db, svc, m
}

func TestCreateListTrimsName(t *testing.T) {
	db, svc, _ := setupShoppingLists(t)
	user := testhelpers.CreateUser(t, db)

	list, err := svc.CreateList(context.Background(), user.ID, "  Weekly shop ")
	require.NoError(t, err)
	assert.Equal(t, "Weekly shop", list.Name)
	assert.Empty(t, list.Items)

	_, err = svc.CreateList(context.Background(), user.ID, "   ")
	assert.ErrorIs(t, err, service.ErrEmptyName)
}

func TestAddRecipeToList(t *testing.T) {
	db, svc, m := setupShoppingLists(t)
	ctx := context.Background()
	user := testhelpers.CreateUser(t, db)
	recipe := testhelpers.CreateRecipe(t, db, "400g spaghetti", "Salt to taste")
	list := testhelpers.CreateShoppingList(t, db, user.ID, "milk")

	n, err := svc.AddRecipeToList(ctx, user.ID, list.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ItemsImported))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LinesWithoutQuantity))

	lists, err := svc.ListsForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	items := lists[0].Items
	require.Len(t, items, 3)
	assert.Equal(t, "milk", items[0].Ingredient)
	assert.Equal(t, "spaghetti", items[1].Ingredient)
	require.NotNil(t, items[1].Quantity)
	assert.Equal(t, "400g", *items[1].Quantity)
	assert.Equal(t, "Salt to taste", items[2].Ingredient)
	assert.Nil(t, items[2].Quantity)
	require.NotNil(t, items[2].RecipeID)
	assert.Equal(t, recipe.ID, *items[2].RecipeID)
}

func TestAddRecipeToListErrors(t *testing.T) {
	db, svc, _ := setupShoppingLists(t)
	ctx := context.Background()
	owner := testhelpers.CreateUser(t, db)
	other := testhelpers.CreateUser(t, db)
	recipe := testhelpers.CreateRecipe(t, db, "1 cup rice")
	list := testhelpers.CreateShoppingList(t, db, owner.ID)

	_, err := svc.AddRecipeToList(ctx, owner.ID, uuid.New(), recipe.ID)
	assert.ErrorIs(t, err, service.ErrListNotFound)

	_, err = svc.AddRecipeToList(ctx, other.ID, list.ID, recipe.ID)
	assert.ErrorIs(t, err, service.ErrListNotOwned)

	_, err = svc.AddRecipeToList(ctx, owner.ID, list.ID, uuid.New())
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestCopyList(t *testing.T) {
	db, svc, _ := setupShoppingLists(t)
	ctx := context.Background()
	user := testhelpers.CreateUser(t, db)
	list := testhelpers.CreateShoppingList(t, db, user.ID, "eggs", "flour")
	_, err := svc.SetItemChecked(ctx, user.ID, list.Items[0].ID, true)
	require.NoError(t, err)

	cp, err := svc.CopyList(ctx, user.ID, list.ID)
	require.NoError(t, err)
	assert.Equal(t, list.Name+" (Copy)", cp.Name)
	require.Len(t, cp.Items, 2)
	assert.Equal(t, "eggs", cp.Items[0].Ingredient)
	assert.False(t, cp.Items[0].Checked)
	assert.Equal(t, "flour", cp.Items[1].Ingredient)

	other := testhelpers.CreateUser(t, db)
	_, err = svc.CopyList(ctx, other.ID, list.ID)
	assert.ErrorIs(t, err, service.ErrListNotOwned)
}

func TestAddItem(t *testing.T) {
	db, svc, _ := setupShoppingLists(t)
	ctx := context.Background()
	user := testhelpers.CreateUser(t, db)
	list := testhelpers.CreateShoppingList(t, db, user.ID, "bread")

	item, err := svc.AddItem(ctx, user.ID, &types.AddItemRequest{
		ShoppingListID: list.ID,
		Ingredient:     "  butter ",
		Quantity:       strPtr("  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "butter", item.Ingredient)
	assert.Nil(t, item.Quantity)
	assert.Equal(t, 1, item.Position)

	item, err = svc.AddItem(ctx, user.ID, &types.AddItemRequest{
		ShoppingListID: list.ID,
		Ingredient:     "jam",
		Quantity:       strPtr(" 1 jar "),
	})
	require.NoError(t, err)
	require.NotNil(t, item.Quantity)
	assert.Equal(t, "1 jar", *item.Quantity)

	_, err = svc.AddItem(ctx, user.ID, &types.AddItemRequest{ShoppingListID: list.ID, Ingredient: " "})
	assert.ErrorIs(t, err, service.ErrEmptyName)
}

func TestItemsAreOwnerScoped(t *testing.T) {
	db, svc, _ := setupShoppingLists(t)
	ctx := context.Background()
	owner := testhelpers.CreateUser(t, db)
	other := testhelpers.CreateUser(t, db)
	list := testhelpers.CreateShoppingList(t, db, owner.ID, "apples")
	itemID := list.Items[0].ID

	_, err := svc.SetItemChecked(ctx, other.ID, itemID, true)
	assert.ErrorIs(t, err, service.ErrItemNotFound)
	assert.ErrorIs(t, svc.DeleteItem(ctx, other.ID, itemID), service.ErrItemNotFound)

	item, err := svc.SetItemChecked(ctx, owner.ID, itemID, true)
	require.NoError(t, err)
	assert.True(t, item.Checked)

	require.NoError(t, svc.DeleteItem(ctx, owner.ID, itemID))
	assert.ErrorIs(t, svc.DeleteItem(ctx, owner.ID, itemID), service.ErrItemNotFound)
}

func TestDeleteList(t *testing.T) {
	db, svc, _ := setupShoppingLists(t)
	ctx := context.Background()
	owner := testhelpers.CreateUser(t, db)
	other := testhelpers.CreateUser(t, db)
	list := testhelpers.CreateShoppingList(t, db, owner.ID, "apples", "pears")

	assert.ErrorIs(t, svc.DeleteList(ctx, other.ID, list.ID), service.ErrListNotOwned)
	require.NoError(t, svc.DeleteList(ctx, owner.ID, list.ID))
	assert.ErrorIs(t, svc.DeleteList(ctx, owner.ID, list.ID), service.ErrListNotFound)

	lists, err := svc.ListsForUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, lists)
}
