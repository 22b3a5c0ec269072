package domain

import (
	"time"

	"github.com/shopspring/decimal"

	pdomain "github.com/tair/inventory-tracker/internal/product/domain"
)

// Line is one product row of the inventory report
type Line struct {
	Name         string              `json:"name"`
	SKU          string              `json:"sku"`
	Category     string              `json:"category"`
	Price        float64             `json:"price"`
	Quantity     int                 `json:"quantity"`
	ReorderLevel int                 `json:"reorder_level"`
	Status       pdomain.StockStatus `json:"status"`
	Value        string              `json:"value"`
}

// InventoryReport summarises the whole product set at GeneratedAt
type InventoryReport struct {
	GeneratedAt     time.Time `json:"generated_at"`
	TotalProducts   int       `json:"total_products"`
	TotalValue      string    `json:"total_value"`
	LowStockItems   int       `json:"low_stock_items"`
	OutOfStockItems int       `json:"out_of_stock_items"`
	Products        []Line    `json:"products"`
}

// Aggregate builds the report from products already sorted by name. Counts use live quantity and
// reorder level, so a product with zero quantity is counted as both low and out of stock.
func Aggregate(products []pdomain.Product, now time.Time) InventoryReport {
	report := InventoryReport{
		GeneratedAt:   now.UTC(),
		TotalProducts: len(products),
		Products:      make([]Line, 0, len(products)),
	}

	total := decimal.Zero
	for i := range products {
		p := &products[i]
		value := p.Value()
		total = total.Add(value)

		if p.Quantity <= p.ReorderLevel {
			report.LowStockItems++
		}
		if p.Quantity == 0 {
			report.OutOfStockItems++
		}

		report.Products = append(report.Products, Line{
			Name:         p.Name,
			SKU:          p.SKU,
			Category:     p.Category,
			Price:        p.Price,
			Quantity:     p.Quantity,
			ReorderLevel: p.ReorderLevel,
			Status:       pdomain.Classify(p.Quantity, p.ReorderLevel),
			Value:        value.StringFixed(2),
		})
	}
	report.TotalValue = total.StringFixed(2)

	return report
}

// StatusCounts tallies lines per stock status, including statuses with no products
func (r *InventoryReport) StatusCounts() map[string]int {
	counts := make(map[string]int, len(pdomain.Statuses))
	for _, s := range pdomain.Statuses {
		counts[string(s)] = 0
	}
	for _, line := range r.Products {
		counts[string(line.Status)]++
	}
	return counts
}
