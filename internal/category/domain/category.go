package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/pkg/apperror"
)

// DefaultIcon is used when a category is created without one
const DefaultIcon = "default"

const (
	maxNameLength        = 50
	maxDescriptionLength = 200
)

var (
	ErrCategoryNotFound  = fmt.Errorf("category %w", apperror.ErrNotFound)
	ErrDuplicateCategory = fmt.Errorf("category %w", apperror.ErrDuplicate)
)

// Category groups products for display. Deleting one only deactivates it.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"size:200"`
	Icon        string    `json:"icon" gorm:"not null;default:default"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// BeforeCreate assigns the id
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ValidateCategory checks the field constraints of a category about to be persisted
func ValidateCategory(c *Category) error {
	v := &apperror.ValidationError{}

	switch name := strings.TrimSpace(c.Name); {
	case name == "":
		v.Add("name", "is required")
	case utf8.RuneCountInString(name) > maxNameLength:
		v.Add("name", "cannot exceed 50 characters")
	}
	if utf8.RuneCountInString(c.Description) > maxDescriptionLength {
		v.Add("description", "cannot exceed 200 characters")
	}

	return v.OrNil()
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id string) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	FindActive(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}
