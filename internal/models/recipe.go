package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/pageza/recipe-builder/backend/internal/embedding"
)

type Recipe struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Title        string          `gorm:"size:255;not null;index" json:"title" validate:"required,max=255"`
	Description  string          `gorm:"type:text" json:"description" validate:"max=2000"`
	Ingredients  StringList      `gorm:"type:jsonb;not null" json:"ingredients" validate:"max=100,dive,max=500"`
	Instructions StringList      `gorm:"type:jsonb;not null" json:"instructions" validate:"max=100,dive,max=2000"`
	PrepTime     int             `json:"prep_time" validate:"gte=0,lte=10080"`
	CookTime     int             `json:"cook_time" validate:"gte=0,lte=10080"`
	Servings     int             `json:"servings" validate:"gte=0,lte=100"`
	Difficulty   string          `gorm:"size:20" json:"difficulty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Category     string          `gorm:"size:100;index" json:"category" validate:"max=100"`
	ImageKey     string          `gorm:"size:255" json:"image_key,omitempty"`
	IsCustom     bool            `json:"is_custom"`
	Embedding    pgvector.Vector `gorm:"type:vector(64)" json:"-"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeSave normalises the record, validates it and refreshes the search embedding.
func (r *Recipe) BeforeSave(tx *gorm.DB) error {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = cases.Title(language.English).String(strings.TrimSpace(r.Category))
	r.Difficulty = strings.ToUpper(strings.TrimSpace(r.Difficulty))
	if r.Ingredients == nil {
		r.Ingredients = StringList{}
	}
	if r.Instructions == nil {
		r.Instructions = StringList{}
	}
	if err := validateRecord(r); err != nil {
		return err
	}
	r.Embedding = embedding.Generate(r.SearchText())
	return nil
}

// SearchText is the text the similarity embedding is built from.
func (r *Recipe) SearchText() string {
	return strings.Join([]string{r.Title, r.Description, r.Category, strings.Join(r.Ingredients, " ")}, " ")
}

// SavedRecipe links a user to a recipe in their collection.
type SavedRecipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_recipes_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_recipes_user_recipe" json:"recipe_id"`
	Recipe    *Recipe   `gorm:"constraint:OnDelete:CASCADE" json:"recipe,omitempty"`
	CreatedAt time.Time `json:"saved_at"`
}

func (s *SavedRecipe) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
