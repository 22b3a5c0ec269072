package export

import (
	"html/template"
	"io"

	pdomain "github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/internal/report/domain"
)

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"stamp": func(r *domain.InventoryReport) string { return r.GeneratedAt.Format(timestampLayout) },
	"price": func(v float64) string { return formatPrice(v) },
	"statusClass": func(s pdomain.StockStatus) string {
		switch s {
		case pdomain.StatusLowStock:
			return "low-stock"
		case pdomain.StatusOutOfStock:
			return "out-of-stock"
		}
		return "in-stock"
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Inventory Report</title>
<style>
body { font-family: Arial, sans-serif; padding: 20px; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 8px; text-align: left; border: 1px solid #ddd; }
th { background-color: #4CAF50; color: white; }
.low-stock { color: #ff9800; }
.out-of-stock { color: #f44336; }
.in-stock { color: #4CAF50; }
</style>
</head>
<body>
<h1>Inventory Report</h1>
<p>Generated: {{stamp .}}</p>
<table>
<tr><td>Total Products</td><td>{{.TotalProducts}}</td><td>Total Value</td><td>{{.TotalValue}}</td></tr>
<tr><td>Low Stock</td><td>{{.LowStockItems}}</td><td>Out of Stock</td><td>{{.OutOfStockItems}}</td></tr>
</table>
<br>
<table>
<tr><th>Name</th><th>SKU</th><th>Category</th><th>Price</th><th>Quantity</th><th>Reorder Level</th><th>Status</th><th>Value</th></tr>
{{- range .Products}}
<tr><td>{{.Name}}</td><td>{{.SKU}}</td><td>{{.Category}}</td><td>{{price .Price}}</td><td>{{.Quantity}}</td><td>{{.ReorderLevel}}</td><td class="{{statusClass .Status}}">{{.Status.Label}}</td><td>{{.Value}}</td></tr>
{{- end}}
</table>
</body>
</html>
`))

// HTML renders a printable page that spreadsheet tools also open as a table
type HTML struct{}

func (HTML) ContentType() string { return "text/html; charset=utf-8" }

func (HTML) Extension() string { return "html" }

func (HTML) Render(w io.Writer, report *domain.InventoryReport) error {
	return reportTemplate.Execute(w, report)
}
