package query

import (
	"context"
	"fmt"

	"github.com/tair/inventory-tracker/internal/category/domain"
)

// ListCategoriesHandler lists active categories sorted by name
type ListCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context) ([]domain.Category, error) {
	categories, err := h.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategoryQuery represents the query to get a category by ID
type GetCategoryQuery struct {
	ID string
}

// GetCategoryHandler handles get category query
type GetCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewGetCategoryHandler creates a new get category handler
func NewGetCategoryHandler(repo domain.CategoryRepository) *GetCategoryHandler {
	return &GetCategoryHandler{repo: repo}
}

// Handle executes the get category query. Deactivated categories are still readable by id.
func (h *GetCategoryHandler) Handle(ctx context.Context, q GetCategoryQuery) (*domain.Category, error) {
	return h.repo.FindByID(ctx, q.ID)
}
