package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as a JSON array column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	b, err := columnBytes(value)
	if err != nil {
		return err
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("failed to decode string list: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

// DietaryRestrictions is stored as a single JSON object column on users.
type DietaryRestrictions struct {
	Conditions          []string `json:"conditions" validate:"max=9,dive,oneof=Vegetarian Vegan Gluten-Free Dairy-Free Nut-Free Keto Paleo Halal Kosher"`
	ExcludedIngredients []string `json:"excluded_ingredients" validate:"max=50,dive,required,max=100"`
}

// IsEmpty reports whether no restriction is set.
func (d DietaryRestrictions) IsEmpty() bool {
	return len(d.Conditions) == 0 && len(d.ExcludedIngredients) == 0
}

// Value implements the driver.Valuer interface
func (d DietaryRestrictions) Value() (driver.Value, error) {
	if d.Conditions == nil {
		d.Conditions = []string{}
	}
	if d.ExcludedIngredients == nil {
		d.ExcludedIngredients = []string{}
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (d *DietaryRestrictions) Scan(value interface{}) error {
	*d = DietaryRestrictions{Conditions: []string{}, ExcludedIngredients: []string{}}
	if value == nil {
		return nil
	}
	b, err := columnBytes(value)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, d); err != nil {
		return fmt.Errorf("failed to decode dietary restrictions: %w", err)
	}
	return nil
}

func columnBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", value)
	}
}
