package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/category/domain"
)

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Category{})
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateCategory
	}
	return err
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.first(ctx, "id = ?", id)
}

// FindByName matches case-insensitively, active or not
func (r *GormCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	return r.first(ctx, "LOWER(name) = LOWER(?)", name)
}

// FindActive returns active categories sorted by name
func (r *GormCategoryRepository) FindActive(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name").Find(&categories).Error
	return categories, err
}

func (r *GormCategoryRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, ok := fields["updated_at"]; !ok {
		fields["updated_at"] = time.Now().UTC()
	}
	res := r.db.WithContext(ctx).Model(&domain.Category{}).Where("id = ?", id).Updates(fields)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateCategory
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *GormCategoryRepository) first(ctx context.Context, query string, args ...interface{}) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).Where(query, args...).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
