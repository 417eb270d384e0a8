package dto

import (
	"time"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
// ParentID, when set, must reference an existing category of the same owner.
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	ParentID    *string `json:"parentID"`
	Description string  `json:"description"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	ParentID    *string `json:"parentID"`
	Description *string `json:"description"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID  string    `json:"categoryID"`
	Name        string    `json:"name"`
	ParentID    *string   `json:"parentID,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  cat.CategoryID,
		Name:        cat.Name,
		ParentID:    cat.ParentID,
		Description: cat.Description,
		CreatedAt:   cat.CreatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain.Category.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return res
}
