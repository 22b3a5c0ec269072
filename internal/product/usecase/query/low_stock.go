package query

import (
	"context"
	"fmt"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// LowStockHandler lists products at or below their reorder level, lowest quantity first
type LowStockHandler struct {
	repo       domain.ProductRepository
	reconciler *Reconciler
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.ProductRepository, reconciler *Reconciler) *LowStockHandler {
	return &LowStockHandler{repo: repo, reconciler: reconciler}
}

// Handle executes the low stock query
func (h *LowStockHandler) Handle(ctx context.Context) ([]domain.Product, error) {
	products, err := h.repo.FindLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}

	h.reconciler.ReconcileAll(ctx, products)
	return products, nil
}
