package domain

// StockStatus is derived from quantity and reorder level. It is never set directly.
type StockStatus string

const (
	StatusInStock    StockStatus = "IN_STOCK"
	StatusLowStock   StockStatus = "LOW_STOCK"
	StatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

// Statuses lists every status in display order
var Statuses = []StockStatus{StatusInStock, StatusLowStock, StatusOutOfStock}

// Classify maps a stock level onto its status. A quantity equal to a non-zero reorder level is low.
func Classify(quantity, reorderLevel int) StockStatus {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= reorderLevel:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Valid reports whether s is a known status
func (s StockStatus) Valid() bool {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock:
		return true
	}
	return false
}

// Label is the human readable form used in reports
func (s StockStatus) Label() string {
	switch s {
	case StatusInStock:
		return "In Stock"
	case StatusLowStock:
		return "Low Stock"
	case StatusOutOfStock:
		return "Out of Stock"
	}
	return string(s)
}

// NeedsReorder is true for low and out of stock
func (s StockStatus) NeedsReorder() bool {
	return s == StatusLowStock || s == StatusOutOfStock
}
