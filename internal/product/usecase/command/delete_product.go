package command

import (
	"context"
	"fmt"

	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	deps Dependencies
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(deps Dependencies) *DeleteProductHandler {
	return &DeleteProductHandler{deps: deps}
}

// Handle executes the delete product command. The product's activity history is kept.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	product, err := h.deps.Repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}

	if err := h.deps.Repo.Delete(ctx, product.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info(ctx).
		Str("product_id", product.ID).
		Str("sku", product.SKU).
		Msg("Product deleted")

	h.deps.record(ctx, alog.ActionDelete, product, fmt.Sprintf("Product %q was deleted", product.Name), product)
	h.deps.notify(ctx, kafka.EventTypeProductDeleted, product)

	return nil
}
