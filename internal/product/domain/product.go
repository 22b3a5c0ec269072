package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/pkg/apperror"
)

// DefaultReorderLevel applies when a product is created without one
const DefaultReorderLevel = 10

var (
	ErrProductNotFound  = fmt.Errorf("product %w", apperror.ErrNotFound)
	ErrDuplicateSKU     = fmt.Errorf("product with this SKU %w", apperror.ErrDuplicate)
	ErrDuplicateBarcode = fmt.Errorf("product with this barcode %w", apperror.ErrDuplicate)
)

// Product represents the product entity
type Product struct {
	ID           string      `json:"id" gorm:"primaryKey;size:36"`
	Name         string      `json:"name" gorm:"size:100;not null"`
	SKU          string      `json:"sku" gorm:"uniqueIndex;not null"`
	Description  string      `json:"description" gorm:"size:500;not null"`
	Category     string      `json:"category" gorm:"index;not null"`
	Price        float64     `json:"price" gorm:"not null"`
	Quantity     int         `json:"quantity" gorm:"not null;default:0"`
	ReorderLevel int         `json:"reorder_level" gorm:"not null;default:10"`
	Supplier     string      `json:"supplier,omitempty"`
	Image        string      `json:"image,omitempty"`
	Barcode      *string     `json:"barcode,omitempty" gorm:"uniqueIndex"`
	Status       StockStatus `json:"status" gorm:"size:20;not null;index"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns the opaque id
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Reconcile sets Status to the classified value and reports whether it changed
func (p *Product) Reconcile() bool {
	want := Classify(p.Quantity, p.ReorderLevel)
	if p.Status == want {
		return false
	}
	p.Status = want
	return true
}

// Value is price times quantity
func (p *Product) Value() decimal.Decimal {
	return decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// BarcodeValue returns the barcode or an empty string
func (p *Product) BarcodeValue() string {
	if p.Barcode == nil {
		return ""
	}
	return *p.Barcode
}

// NormalizeSKU trims and upper-cases a SKU; uniqueness is case-insensitive
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// NormalizeBarcode trims a barcode and maps blank to nil so the unique index ignores it
func NormalizeBarcode(barcode *string) *string {
	if barcode == nil {
		return nil
	}
	v := strings.TrimSpace(*barcode)
	if v == "" {
		return nil
	}
	return &v
}

// ListFilter narrows list reads. Status is evaluated on live quantity and reorder level.
type ListFilter struct {
	Category string
	Status   StockStatus
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Product, error)
	FindAllByName(ctx context.Context) ([]Product, error)
	Search(ctx context.Context, term string) ([]Product, error)
	FindLowStock(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	HealStatus(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
