package dto

import (
	"github.com/SscSPs/fintrack/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Type  string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateCategoryRequest defines the mutable fields of a category.
type UpdateCategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Type  *string `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Color      string `json:"color"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       string(c.Type),
		Color:      c.Color,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to CategoryResponse DTOs
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
