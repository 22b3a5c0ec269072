package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// ListProductsQuery represents the query to list all products
type ListProductsQuery struct {
	Category string // Optional: filter by category
	Status   string // Optional: filter by live stock status
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo       domain.ProductRepository
	reconciler *Reconciler
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository, reconciler *Reconciler) *ListProductsHandler {
	return &ListProductsHandler{repo: repo, reconciler: reconciler}
}

// Handle executes the list products query, newest first
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.Product, error) {
	filter := domain.ListFilter{Category: strings.TrimSpace(q.Category)}
	if q.Status != "" {
		status, ok := domain.ParseStatus(q.Status)
		if !ok {
			v := &apperror.ValidationError{}
			v.Add("status", "must be one of IN_STOCK, LOW_STOCK, OUT_OF_STOCK")
			return nil, v
		}
		filter.Status = status
	}

	products, err := h.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	h.reconciler.ReconcileAll(ctx, products)
	return products, nil
}
