// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=50"`
	Subcategories []string `json:"subcategories,omitempty" binding:"omitempty,max=30"`
	Color         string   `json:"color,omitempty"`
	Kind          string   `json:"kind,omitempty" binding:"omitempty,oneof=expense income"`
}

// UpdateCategoryRequest represents the request body for category update.
// A present subcategories array replaces the stored list.
type UpdateCategoryRequest struct {
	Name          *string   `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color         *string   `json:"color,omitempty"`
	Subcategories *[]string `json:"subcategories,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Subcategories []string  `json:"subcategories"`
	Color         string    `json:"color"`
	Kind          string    `json:"kind"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	subcategories := cat.Subcategories
	if subcategories == nil {
		subcategories = []string{}
	}

	return CategoryResponse{
		ID:            cat.ID.String(),
		Name:          cat.Name,
		Subcategories: subcategories,
		Color:         cat.Color,
		Kind:          string(cat.Kind),
		CreatedAt:     cat.CreatedAt,
		UpdatedAt:     cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of categories to a CategoryListResponse DTO.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	response := CategoryListResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}
	for _, cat := range categories {
		response.Categories = append(response.Categories, ToCategoryResponse(cat))
	}
	return response
}
