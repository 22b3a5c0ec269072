package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tair/inventory-tracker/internal/report/domain"
)

// CSV renders a summary block followed by the product table
type CSV struct{}

func (CSV) ContentType() string { return "text/csv; charset=utf-8" }

func (CSV) Extension() string { return "csv" }

func (CSV) Render(w io.Writer, report *domain.InventoryReport) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Inventory Report"},
		{"Generated", report.GeneratedAt.Format(timestampLayout)},
		{},
		{"Total Products", strconv.Itoa(report.TotalProducts)},
		{"Total Value", report.TotalValue},
		{"Low Stock Items", strconv.Itoa(report.LowStockItems)},
		{"Out of Stock Items", strconv.Itoa(report.OutOfStockItems)},
		{},
		{"Product Details"},
		{"Name", "SKU", "Category", "Price", "Quantity", "Reorder Level", "Status", "Value"},
	}
	for _, line := range report.Products {
		rows = append(rows, []string{
			line.Name,
			line.SKU,
			line.Category,
			strconv.FormatFloat(line.Price, 'f', 2, 64),
			strconv.Itoa(line.Quantity),
			strconv.Itoa(line.ReorderLevel),
			line.Status.Label(),
			line.Value,
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
