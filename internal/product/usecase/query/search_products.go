package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// SearchProductsQuery matches name, sku, description, category or barcode
type SearchProductsQuery struct {
	Term string
}

// SearchProductsHandler handles search products query
type SearchProductsHandler struct {
	repo       domain.ProductRepository
	reconciler *Reconciler
}

// NewSearchProductsHandler creates a new search products handler
func NewSearchProductsHandler(repo domain.ProductRepository, reconciler *Reconciler) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo, reconciler: reconciler}
}

// Handle executes the search products query
func (h *SearchProductsHandler) Handle(ctx context.Context, q SearchProductsQuery) ([]domain.Product, error) {
	term := strings.TrimSpace(q.Term)
	if term == "" {
		v := &apperror.ValidationError{}
		v.Add("query", "is required")
		return nil, v
	}

	products, err := h.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	h.reconciler.ReconcileAll(ctx, products)
	return products, nil
}
