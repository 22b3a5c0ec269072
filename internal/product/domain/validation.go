package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/tair/inventory-tracker/pkg/apperror"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

// ValidateProduct checks every field constraint of a product about to be persisted
func ValidateProduct(p *Product) error {
	v := &apperror.ValidationError{}

	switch name := strings.TrimSpace(p.Name); {
	case name == "":
		v.Add("name", "is required")
	case utf8.RuneCountInString(name) > maxNameLength:
		v.Add("name", "cannot exceed 100 characters")
	}

	if strings.TrimSpace(p.SKU) == "" {
		v.Add("sku", "is required")
	}

	switch desc := strings.TrimSpace(p.Description); {
	case desc == "":
		v.Add("description", "is required")
	case utf8.RuneCountInString(desc) > maxDescriptionLength:
		v.Add("description", "cannot exceed 500 characters")
	}

	if strings.TrimSpace(p.Category) == "" {
		v.Add("category", "is required")
	}
	if p.Price < 0 {
		v.Add("price", "cannot be negative")
	}
	if p.Quantity < 0 {
		v.Add("quantity", "cannot be negative")
	}
	if p.ReorderLevel < 0 {
		v.Add("reorder_level", "cannot be negative")
	}

	return v.OrNil()
}

// ParseStatus accepts either the stored form or the label form
func ParseStatus(raw string) (StockStatus, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range Statuses {
		if strings.EqualFold(raw, string(s)) || strings.EqualFold(raw, s.Label()) {
			return s, true
		}
	}
	return "", false
}
