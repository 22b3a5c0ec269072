package command

import (
	"context"
	"fmt"
	"math"
	"time"

	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// RestockProductCommand adds Quantity units to a product
type RestockProductCommand struct {
	ID       string
	Quantity int
}

// RestockProductHandler handles restock command
type RestockProductHandler struct {
	deps Dependencies
}

// NewRestockProductHandler creates a new restock handler
func NewRestockProductHandler(deps Dependencies) *RestockProductHandler {
	return &RestockProductHandler{deps: deps}
}

// Handle executes the restock command. Concurrent restocks of one product are last-write-wins.
func (h *RestockProductHandler) Handle(ctx context.Context, cmd RestockProductCommand) (*domain.Product, error) {
	if cmd.Quantity <= 0 {
		v := &apperror.ValidationError{}
		v.Add("quantity", "must be greater than zero")
		return nil, v
	}

	product, err := h.deps.Repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Quantity > math.MaxInt-product.Quantity {
		v := &apperror.ValidationError{}
		v.Add("quantity", "would overflow the stock count")
		return nil, v
	}

	previousQuantity := product.Quantity
	previousStatus := domain.Classify(product.Quantity, product.ReorderLevel)

	product.Quantity += cmd.Quantity
	product.Status = domain.Classify(product.Quantity, product.ReorderLevel)
	product.UpdatedAt = time.Now().UTC()

	err = h.deps.Repo.Update(ctx, product.ID, map[string]interface{}{
		"quantity":   product.Quantity,
		"status":     product.Status,
		"updated_at": product.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restock product: %w", err)
	}

	logger.Info(ctx).
		Str("product_id", product.ID).
		Int("added", cmd.Quantity).
		Int("quantity", product.Quantity).
		Str("status", string(product.Status)).
		Msg("Product restocked")

	h.deps.record(ctx, alog.ActionRestock, product,
		fmt.Sprintf("Product %q was restocked with %d units", product.Name, cmd.Quantity),
		map[string]interface{}{
			"previous_quantity": previousQuantity,
			"added":             cmd.Quantity,
			"quantity":          product.Quantity,
			"previous_status":   previousStatus,
			"status":            product.Status,
		})
	h.deps.notify(ctx, kafka.EventTypeProductRestocked, product)

	return product, nil
}

// HandleEvent adapts a restock request from the message broker
func (h *RestockProductHandler) HandleEvent(ctx context.Context, event kafka.RestockRequestedEvent) error {
	_, err := h.Handle(ctx, RestockProductCommand{ID: event.ProductID, Quantity: event.Quantity})
	return err
}
