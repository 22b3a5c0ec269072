package query

import (
	"context"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo       domain.ProductRepository
	reconciler *Reconciler
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository, reconciler *Reconciler) *GetProductHandler {
	return &GetProductHandler{repo: repo, reconciler: reconciler}
}

// Handle executes the get product query. A stale status is healed before returning; if that
// write fails the read fails with it.
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	product, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	if err := h.reconciler.ReconcileOne(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
