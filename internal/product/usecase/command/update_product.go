package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// UpdateProductCommand is a partial update: nil fields are left untouched
type UpdateProductCommand struct {
	ID           string
	Name         *string
	SKU          *string
	Description  *string
	Category     *string
	Price        *float64
	Quantity     *int
	ReorderLevel *int
	Supplier     *string
	Image        *string
	Barcode      *string
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	deps Dependencies
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(deps Dependencies) *UpdateProductHandler {
	return &UpdateProductHandler{deps: deps}
}

// Handle executes the update product command. Status is recomputed only when quantity or reorder
// level is part of the update.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	existing, err := h.deps.Repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	merged := *existing
	changes := map[string]interface{}{}

	setString := func(column string, src *string, dst *string) {
		if src == nil {
			return
		}
		*dst = strings.TrimSpace(*src)
		changes[column] = *dst
	}
	setString("name", cmd.Name, &merged.Name)
	setString("description", cmd.Description, &merged.Description)
	setString("category", cmd.Category, &merged.Category)
	setString("supplier", cmd.Supplier, &merged.Supplier)
	setString("image", cmd.Image, &merged.Image)

	var checkSKU string
	if cmd.SKU != nil {
		merged.SKU = domain.NormalizeSKU(*cmd.SKU)
		changes["sku"] = merged.SKU
		if merged.SKU != existing.SKU {
			checkSKU = merged.SKU
		}
	}

	var checkBarcode *string
	if cmd.Barcode != nil {
		merged.Barcode = domain.NormalizeBarcode(cmd.Barcode)
		if merged.Barcode == nil {
			changes["barcode"] = nil
		} else {
			changes["barcode"] = *merged.Barcode
			if merged.BarcodeValue() != existing.BarcodeValue() {
				checkBarcode = merged.Barcode
			}
		}
	}

	if cmd.Price != nil {
		merged.Price = *cmd.Price
		changes["price"] = merged.Price
	}

	stockChanged := false
	if cmd.Quantity != nil {
		merged.Quantity = *cmd.Quantity
		changes["quantity"] = merged.Quantity
		stockChanged = true
	}
	if cmd.ReorderLevel != nil {
		merged.ReorderLevel = *cmd.ReorderLevel
		changes["reorder_level"] = merged.ReorderLevel
		stockChanged = true
	}

	if err := domain.ValidateProduct(&merged); err != nil {
		return nil, err
	}
	if err := h.deps.ensureUnique(ctx, existing.ID, checkSKU, checkBarcode); err != nil {
		return nil, err
	}

	// changes is the audit snapshot; fields adds the derived columns
	fields := make(map[string]interface{}, len(changes)+2)
	for k, v := range changes {
		fields[k] = v
	}

	previous := domain.Classify(existing.Quantity, existing.ReorderLevel)
	if stockChanged {
		merged.Status = domain.Classify(merged.Quantity, merged.ReorderLevel)
		fields["status"] = merged.Status
	}

	merged.UpdatedAt = time.Now().UTC()
	fields["updated_at"] = merged.UpdatedAt

	if err := h.deps.Repo.Update(ctx, existing.ID, fields); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	logger.Info(ctx).
		Str("product_id", merged.ID).
		Int("fields", len(changes)).
		Str("status", string(merged.Status)).
		Msg("Product updated")

	h.deps.record(ctx, alog.ActionUpdate, &merged, fmt.Sprintf("Product %q was updated", merged.Name), changes)
	h.deps.notify(ctx, kafka.EventTypeProductUpdated, &merged)
	if stockChanged {
		h.deps.notifyLowStock(ctx, previous, &merged)
	}

	return &merged, nil
}
