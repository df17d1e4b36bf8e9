package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShoppingList struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string             `gorm:"size:255;not null" json:"name"`
	Items     []ShoppingListItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

func (l *ShoppingList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// ShoppingListItem is one line of a shopping list. Position orders items
// within their list; Quantity is nil when none is known.
type ShoppingListItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ShoppingListID uuid.UUID  `gorm:"type:uuid;not null;index" json:"shopping_list_id"`
	RecipeID       *uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	Ingredient     string     `gorm:"size:500;not null" json:"ingredient"`
	Quantity       *string    `gorm:"size:100" json:"quantity"`
	Checked        bool       `gorm:"not null" json:"checked"`
	Position       int        `gorm:"not null" json:"position"`
}

func (i *ShoppingListItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
