package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/recipe-builder/backend/internal/ingredient"
	"github.com/pageza/recipe-builder/backend/internal/models"
)

// BuildItems turns ingredient lines into unchecked items for listID, one per
// line and in line order. Empty lines become items with an empty name.
func BuildItems(lines []string, listID, recipeID uuid.UUID) []models.ShoppingListItem {
	parsed := ingredient.ParseAll(lines)
	items := make([]models.ShoppingListItem, len(parsed))
	for i, p := range parsed {
		rid := recipeID
		items[i] = models.ShoppingListItem{
			ShoppingListID: listID,
			RecipeID:       &rid,
			Ingredient:     p.Name,
			Quantity:       p.Quantity,
			Checked:        false,
			Position:       i,
		}
	}
	return items
}

// ImportIngredients parses each line and stores the resulting items on
// listID with a single atomic call to store. It returns the number of items
// created. An empty input creates nothing and does not call store. Errors
// from store are returned unmodified.
func ImportIngredients(ctx context.Context, store ItemCreator, lines []string, listID, recipeID uuid.UUID) (int, error) {
	if len(lines) == 0 {
		return 0, nil
	}
	items := BuildItems(lines, listID, recipeID)
	if err := store.CreateItems(ctx, items); err != nil {
		return 0, err
	}
	return len(items), nil
}

// linesWithoutQuantity counts the lines the parser finds no amount on.
func linesWithoutQuantity(lines []string) int {
	n := 0
	for _, p := range ingredient.ParseAll(lines) {
		if !p.HasQuantity() {
			n++
		}
	}
	return n
}
