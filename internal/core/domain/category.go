package domain

import (
	"fmt"
	"regexp"
)

// CategoryType determines the sign of a transaction's contribution to a balance.
type CategoryType string

const (
	Income  CategoryType = "INCOME"
	Expense CategoryType = "EXPENSE"
)

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#000000"

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsValid reports whether t is INCOME or EXPENSE.
func (t CategoryType) IsValid() bool {
	return t == Income || t == Expense
}

// Category classifies transactions of a single user.
type Category struct {
	CategoryID string       `json:"categoryID"`
	UserID     string       `json:"userID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	Color      string       `json:"color"`
	AuditFields
}

// Validate checks the write-time invariants of a category.
func (c Category) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if len(c.Name) > 100 {
		return fmt.Errorf("category name must be at most 100 characters")
	}
	if !c.Type.IsValid() {
		return fmt.Errorf("unknown category type %q", c.Type)
	}
	if !colorPattern.MatchString(c.Color) {
		return fmt.Errorf("color %q must be a hex color like #A1B2C3", c.Color)
	}
	return nil
}
