package export

import (
	"io"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tair/inventory-tracker/internal/report/domain"
)

// PDF renders the report as a paginated table
type PDF struct{}

func (PDF) ContentType() string { return "application/pdf" }

func (PDF) Extension() string { return "pdf" }

func (PDF) Render(w io.Writer, report *domain.InventoryReport) error {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(15,
		text.NewCol(8, "Inventory Report", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, "Generated: "+report.GeneratedAt.Format(timestampLayout), props.Text{
			Size:  8,
			Align: align.Right,
			Top:   4,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Total Products: "+strconv.Itoa(report.TotalProducts), props.Text{Size: 10}),
			text.New("Total Value: "+report.TotalValue, props.Text{Size: 10, Top: 5}),
		),
		col.New(6).Add(
			text.New("Low Stock Items: "+strconv.Itoa(report.LowStockItems), props.Text{Size: 10}),
			text.New("Out of Stock Items: "+strconv.Itoa(report.OutOfStockItems), props.Text{Size: 10, Top: 5}),
		),
	)

	header := props.Text{Style: fontstyle.Bold, Size: 8}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}
	m.AddRow(8,
		text.NewCol(3, "Name", header),
		text.NewCol(2, "SKU", header),
		text.NewCol(2, "Category", header),
		text.NewCol(1, "Price", headerRight),
		text.NewCol(1, "Qty", headerRight),
		text.NewCol(1, "Reorder", headerRight),
		text.NewCol(1, "Status", header),
		text.NewCol(1, "Value", headerRight),
	)

	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	for _, line := range report.Products {
		m.AddRow(7,
			text.NewCol(3, line.Name, cell),
			text.NewCol(2, line.SKU, cell),
			text.NewCol(2, line.Category, cell),
			text.NewCol(1, formatPrice(line.Price), cellRight),
			text.NewCol(1, strconv.Itoa(line.Quantity), cellRight),
			text.NewCol(1, strconv.Itoa(line.ReorderLevel), cellRight),
			text.NewCol(1, line.Status.Label(), cell),
			text.NewCol(1, line.Value, cellRight),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return err
	}
	_, err = w.Write(doc.GetBytes())
	return err
}

func formatPrice(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
