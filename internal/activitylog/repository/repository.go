package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/activitylog/domain"
)

type GormActivityLogRepository struct {
	db *gorm.DB
}

func NewGormActivityLogRepository(db *gorm.DB) *GormActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

func (r *GormActivityLogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.ActivityLog{})
}

func (r *GormActivityLogRepository) Append(ctx context.Context, entry *domain.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns entries newest first
func (r *GormActivityLogRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.ActivityLog, error) {
	q := r.db.WithContext(ctx).Model(&domain.ActivityLog{})
	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}

	var logs []domain.ActivityLog
	err := q.Order("created_at DESC").Order("id DESC").Limit(clampLimit(filter.Limit)).Find(&logs).Error
	return logs, err
}

func (r *GormActivityLogRepository) FindByEntity(ctx context.Context, entityID string, limit int) ([]domain.ActivityLog, error) {
	var logs []domain.ActivityLog
	err := r.db.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(clampLimit(limit)).
		Find(&logs).Error
	return logs, err
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return domain.DefaultListLimit
	case limit > domain.MaxListLimit:
		return domain.MaxListLimit
	}
	return limit
}
