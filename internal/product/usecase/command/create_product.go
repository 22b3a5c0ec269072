package command

import (
	"context"
	"fmt"
	"strings"

	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// CreateProductCommand represents the command to create a new product.
// Any status supplied by the caller is ignored.
type CreateProductCommand struct {
	Name         string
	SKU          string
	Description  string
	Category     string
	Price        float64
	Quantity     int
	ReorderLevel *int
	Supplier     string
	Image        string
	Barcode      *string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	deps Dependencies
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(deps Dependencies) *CreateProductHandler {
	return &CreateProductHandler{deps: deps}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	product := &domain.Product{
		Name:         strings.TrimSpace(cmd.Name),
		SKU:          domain.NormalizeSKU(cmd.SKU),
		Description:  strings.TrimSpace(cmd.Description),
		Category:     strings.TrimSpace(cmd.Category),
		Price:        cmd.Price,
		Quantity:     cmd.Quantity,
		ReorderLevel: domain.DefaultReorderLevel,
		Supplier:     strings.TrimSpace(cmd.Supplier),
		Image:        strings.TrimSpace(cmd.Image),
		Barcode:      domain.NormalizeBarcode(cmd.Barcode),
	}
	if cmd.ReorderLevel != nil {
		product.ReorderLevel = *cmd.ReorderLevel
	}

	if err := domain.ValidateProduct(product); err != nil {
		return nil, err
	}
	if err := h.deps.ensureUnique(ctx, "", product.SKU, product.Barcode); err != nil {
		return nil, err
	}

	product.Status = domain.Classify(product.Quantity, product.ReorderLevel)

	if err := h.deps.Repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info(ctx).
		Str("product_id", product.ID).
		Str("sku", product.SKU).
		Str("status", string(product.Status)).
		Msg("Product created")

	h.deps.record(ctx, alog.ActionCreate, product, fmt.Sprintf("Product %q was created", product.Name), product)
	h.deps.notify(ctx, kafka.EventTypeProductCreated, product)
	h.deps.notifyLowStock(ctx, "", product)

	return product, nil
}
