package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord is returned by save hooks when a record fails validation.
var ErrInvalidRecord = errors.New("invalid record")

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	SkillBeginner     = "BEGINNER"
	SkillIntermediate = "INTERMEDIATE"
	SkillAdvanced     = "ADVANCED"
)

// DietaryConditions lists the accepted dietary restriction conditions.
var DietaryConditions = []string{
	"Vegetarian", "Vegan", "Gluten-Free", "Dairy-Free", "Nut-Free", "Keto", "Paleo", "Halal", "Kosher",
}

var validate = validator.New()

// IsSkillLevel reports whether s is a known skill level.
func IsSkillLevel(s string) bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

func validateRecord(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return nil
}
