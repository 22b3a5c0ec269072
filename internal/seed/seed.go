// Package seed loads the sample catalogue through the regular command handlers, so seeded rows get
// derived statuses and audit entries like any other write.
package seed

import (
	"context"
	"errors"
	"fmt"

	ccommand "github.com/tair/inventory-tracker/internal/category/usecase/command"
	pcommand "github.com/tair/inventory-tracker/internal/product/usecase/command"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/auth"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// Actor is recorded on the audit entries of seeded rows
const Actor = "Seeder"

// Result counts what a run did. Existing rows are skipped, never overwritten.
type Result struct {
	CategoriesCreated int
	CategoriesSkipped int
	ProductsCreated   int
	ProductsSkipped   int
}

// Seeder writes the sample data
type Seeder struct {
	categories *ccommand.CreateCategoryHandler
	products   *pcommand.CreateProductHandler
}

// NewSeeder creates a new seeder
func NewSeeder(categories *ccommand.CreateCategoryHandler, products *pcommand.CreateProductHandler) *Seeder {
	return &Seeder{categories: categories, products: products}
}

// Run seeds categories first, then products. A duplicate is skipped; any other error stops the run.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	ctx = auth.WithActor(ctx, Actor)
	var res Result

	for _, cmd := range Categories() {
		_, err := s.categories.Handle(ctx, cmd)
		switch {
		case err == nil:
			res.CategoriesCreated++
		case errors.Is(err, apperror.ErrDuplicate):
			res.CategoriesSkipped++
		default:
			return res, fmt.Errorf("failed to seed category %q: %w", cmd.Name, err)
		}
	}

	for _, cmd := range Products() {
		p, err := s.products.Handle(ctx, cmd)
		switch {
		case err == nil:
			res.ProductsCreated++
			logger.Info(ctx).
				Str("sku", p.SKU).
				Str("status", string(p.Status)).
				Msg("Seeded product")
		case errors.Is(err, apperror.ErrDuplicate):
			res.ProductsSkipped++
			logger.Debug(ctx).Str("sku", cmd.SKU).Msg("Product already exists, skipping")
		default:
			return res, fmt.Errorf("failed to seed product %q: %w", cmd.SKU, err)
		}
	}

	return res, nil
}

// Categories is the sample category set
func Categories() []ccommand.CreateCategoryCommand {
	return []ccommand.CreateCategoryCommand{
		{Name: "Electronics", Description: "Computer peripherals, cables and lighting", Icon: "💻"},
		{Name: "Furniture", Description: "Office furniture", Icon: "🪑"},
		{Name: "Books", Description: "Notebooks and stationery", Icon: "📚"},
	}
}

// Products is the sample catalogue. It covers every stock status.
func Products() []pcommand.CreateProductCommand {
	reorder := func(n int) *int { return &n }
	return []pcommand.CreateProductCommand{
		{Name: "Wireless Mouse", SKU: "WM001", Description: "Ergonomic wireless mouse with USB receiver", Category: "Electronics", Price: 25.99, Quantity: 50, ReorderLevel: reorder(10), Supplier: "Tech Supplies Inc"},
		{Name: "Mechanical Keyboard", SKU: "KB001", Description: "RGB mechanical keyboard with blue switches", Category: "Electronics", Price: 89.99, Quantity: 30, ReorderLevel: reorder(15), Supplier: "Tech Supplies Inc"},
		{Name: "Office Chair", SKU: "OC001", Description: "Ergonomic office chair with lumbar support", Category: "Furniture", Price: 199.99, Quantity: 15, ReorderLevel: reorder(5), Supplier: "Furniture World"},
		{Name: "USB-C Cable", SKU: "UC001", Description: "6ft braided USB-C charging cable", Category: "Electronics", Price: 12.99, Quantity: 8, ReorderLevel: reorder(20), Supplier: "Tech Supplies Inc"},
		{Name: "Notebook Set", SKU: "NB001", Description: "Set of 5 lined notebooks", Category: "Books", Price: 15.99, Quantity: 100, ReorderLevel: reorder(25), Supplier: "Office Depot"},
		{Name: "Desk Lamp", SKU: "DL001", Description: "LED desk lamp with adjustable brightness", Category: "Electronics", Price: 34.99, Quantity: 0, ReorderLevel: reorder(10), Supplier: "Lighting Co"},
	}
}
