package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultServings is used until a user picks their own.
const DefaultServings = 4

type User struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
	Email               string              `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email,max=255"`
	Name                string              `gorm:"size:100" json:"name" validate:"max=100"`
	PasswordHash        string              `gorm:"not null" json:"-" validate:"required"`
	Role                string              `gorm:"size:20;not null" json:"role" validate:"oneof=USER ADMIN"`
	SkillLevel          string              `gorm:"size:20;not null" json:"skill_level" validate:"oneof=BEGINNER INTERMEDIATE ADVANCED"`
	FavoriteDishes      StringList          `gorm:"type:jsonb" json:"favorite_dishes" validate:"max=20,dive,required,max=100"`
	DefaultServings     int                 `gorm:"not null" json:"default_servings" validate:"gte=1,lte=50"`
	DietaryRestrictions DietaryRestrictions `gorm:"type:jsonb" json:"dietary_restrictions"`
	OnboardedAt         *time.Time          `json:"onboarded_at,omitempty"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeSave fills defaults and rejects invalid records.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.SkillLevel == "" {
		u.SkillLevel = SkillBeginner
	}
	if u.DefaultServings == 0 {
		u.DefaultServings = DefaultServings
	}
	if u.FavoriteDishes == nil {
		u.FavoriteDishes = StringList{}
	}
	return validateRecord(u)
}
