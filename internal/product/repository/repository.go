package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	err := r.db.WithContext(ctx).Create(product).Error
	return r.duplicate(ctx, product.ID, product.SKU, product.Barcode, err)
}

func (r *GormProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormProductRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return r.first(ctx, "sku = ?", domain.NormalizeSKU(sku))
}

func (r *GormProductRepository) FindByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	return r.first(ctx, "barcode = ?", strings.TrimSpace(barcode))
}

func (r *GormProductRepository) FindAll(ctx context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	switch filter.Status {
	case domain.StatusOutOfStock:
		q = q.Where("quantity = 0")
	case domain.StatusLowStock:
		q = q.Where("quantity > 0 AND quantity <= reorder_level")
	case domain.StatusInStock:
		q = q.Where("quantity > reorder_level")
	}

	var products []domain.Product
	err := q.Order("created_at DESC").Order("id").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindAllByName(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("name").Order("id").Find(&products).Error
	return products, err
}

// Search matches a case-insensitive substring of name, sku, description, category or barcode
func (r *GormProductRepository) Search(ctx context.Context, term string) ([]domain.Product, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(term))) + "%"

	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(sku) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\' OR LOWER(barcode) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern, pattern).
		Order("name").
		Find(&products).Error
	return products, err
}

// FindLowStock compares live columns, not the stored status
func (r *GormProductRepository) FindLowStock(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("quantity <= reorder_level").
		Order("quantity ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&products).Error
	return products, err
}

// Update writes only the given columns. Concurrent writers to the same row are last-write-wins.
func (r *GormProductRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, ok := fields["updated_at"]; !ok {
		fields["updated_at"] = time.Now().UTC()
	}
	res := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		sku, _ := fields["sku"].(string)
		var barcode *string
		if b, ok := fields["barcode"].(string); ok {
			barcode = &b
		}
		return r.duplicate(ctx, id, sku, barcode, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// HealStatus persists a reconciled status only if the stock columns still hold the values it was
// derived from, so a heal never overwrites a newer write.
func (r *GormProductRepository) HealStatus(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ? AND quantity = ? AND reorder_level = ?", product.ID, product.Quantity, product.ReorderLevel).
		UpdateColumn("status", product.Status).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *GormProductRepository) first(ctx context.Context, query string, args ...interface{}) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Where(query, args...).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// duplicate names the unique column a write collided on. The translated gorm error no longer
// carries the constraint, so the conflicting row is looked up instead.
func (r *GormProductRepository) duplicate(ctx context.Context, selfID, sku string, barcode *string, err error) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	if sku != "" {
		if other, findErr := r.FindBySKU(ctx, sku); findErr == nil && other.ID != selfID {
			return domain.ErrDuplicateSKU
		}
	}
	if barcode != nil {
		if other, findErr := r.FindByBarcode(ctx, *barcode); findErr == nil && other.ID != selfID {
			return domain.ErrDuplicateBarcode
		}
	}
	return fmt.Errorf("product %w", apperror.ErrDuplicate)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
