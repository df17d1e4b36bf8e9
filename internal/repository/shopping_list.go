package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-builder/backend/internal/models"
)

const itemBatchSize = 200

// ShoppingListRepository stores shopping lists and their items.
type ShoppingListRepository struct {
	db *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) *ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// CreateItems inserts items in one transaction: either every item is stored
// or none is. Each item's Position is taken as its order within the batch and
// is offset past the items already on its list. IDs and final positions are
// written back into items. Driver errors are returned unwrapped so callers
// can classify them.
func (r *ShoppingListRepository) CreateItems(ctx context.Context, items []models.ShoppingListItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createItems(tx, items)
	})
}

func createItems(tx *gorm.DB, items []models.ShoppingListItem) error {
	offsets := make(map[uuid.UUID]int)
	for i := range items {
		listID := items[i].ShoppingListID
		offset, ok := offsets[listID]
		if !ok {
			var maxPos int
			row := tx.Model(&models.ShoppingListItem{}).
				Select("COALESCE(MAX(position), -1)").
				Where("shopping_list_id = ?", listID).
				Row()
			if err := row.Scan(&maxPos); err != nil {
				return err
			}
			offset = maxPos + 1
			offsets[listID] = offset
		}
		items[i].Position += offset
	}
	return tx.CreateInBatches(&items, itemBatchSize).Error
}

func (r *ShoppingListRepository) CreateList(ctx context.Context, list *models.ShoppingList) error {
	if err := r.db.WithContext(ctx).Create(list).Error; err != nil {
		return fmt.Errorf("failed to create shopping list: %w", err)
	}
	return nil
}

// GetList loads a list with its items in display order.
func (r *ShoppingListRepository) GetList(ctx context.Context, id uuid.UUID) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := r.db.WithContext(ctx).
		Preload("Items", orderItems).
		First(&list, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}
	return &list, nil
}

// ListsForUser returns the user's lists, newest first.
func (r *ShoppingListRepository) ListsForUser(ctx context.Context, userID uuid.UUID) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	err := r.db.WithContext(ctx).
		Preload("Items", orderItems).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}
	return lists, nil
}

// DeleteList removes a list and its items.
func (r *ShoppingListRepository) DeleteList(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopping_list_id = ?", id).Delete(&models.ShoppingListItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete shopping list items: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&models.ShoppingList{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete shopping list: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// CopyList creates a new list owned by src's owner holding unchecked copies
// of src's items in the same order.
func (r *ShoppingListRepository) CopyList(ctx context.Context, src *models.ShoppingList, name string) (*models.ShoppingList, error) {
	dst := &models.ShoppingList{UserID: src.UserID, Name: name}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(dst).Error; err != nil {
			return err
		}
		if len(src.Items) == 0 {
			return nil
		}
		items := make([]models.ShoppingListItem, len(src.Items))
		for i, item := range src.Items {
			items[i] = models.ShoppingListItem{
				ShoppingListID: dst.ID,
				RecipeID:       item.RecipeID,
				Ingredient:     item.Ingredient,
				Quantity:       item.Quantity,
				Position:       i,
			}
		}
		if err := createItems(tx, items); err != nil {
			return err
		}
		dst.Items = items
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy shopping list: %w", err)
	}
	if dst.Items == nil {
		dst.Items = []models.ShoppingListItem{}
	}
	return dst, nil
}

// FindItemForUser loads an item only if it sits on a list owned by userID.
func (r *ShoppingListRepository) FindItemForUser(ctx context.Context, itemID, userID uuid.UUID) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	err := r.db.WithContext(ctx).
		Select("shopping_list_items.*").
		Joins("JOIN shopping_lists ON shopping_lists.id = shopping_list_items.shopping_list_id").
		Where("shopping_list_items.id = ? AND shopping_lists.user_id = ?", itemID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list item: %w", err)
	}
	return &item, nil
}

func (r *ShoppingListRepository) SetItemChecked(ctx context.Context, itemID uuid.UUID, checked bool) (*models.ShoppingListItem, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&models.ShoppingListItem{}).Where("id = ?", itemID).Update("checked", checked)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update shopping list item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var item models.ShoppingListItem
	if err := db.First(&item, "id = ?", itemID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload shopping list item: %w", err)
	}
	return &item, nil
}

func (r *ShoppingListRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&models.ShoppingListItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete shopping list item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC").Order("created_at ASC")
}
