package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Action is what happened to an entity
type Action string

const (
	ActionCreate        Action = "CREATE"
	ActionUpdate        Action = "UPDATE"
	ActionDelete        Action = "DELETE"
	ActionRestock       Action = "RESTOCK"
	ActionLowStockAlert Action = "LOW_STOCK_ALERT"
)

// EntityType is the kind of entity a log entry refers to
type EntityType string

const (
	EntityProduct  EntityType = "PRODUCT"
	EntityCategory EntityType = "CATEGORY"
)

// DefaultUser is recorded when no actor is known
const DefaultUser = "Admin"

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// ActivityLog is an append-only audit record
type ActivityLog struct {
	ID          string            `json:"id" gorm:"primaryKey;size:36"`
	Action      Action            `json:"action" gorm:"size:20;not null"`
	EntityType  EntityType        `json:"entity_type" gorm:"size:20;not null;index"`
	EntityID    string            `json:"entity_id" gorm:"size:36;not null;index"`
	EntityName  string            `json:"entity_name" gorm:"not null"`
	Description string            `json:"description"`
	Changes     datatypes.JSONMap `json:"changes,omitempty"`
	User        string            `json:"user" gorm:"size:100;not null;default:Admin"`
	CreatedAt   time.Time         `json:"created_at" gorm:"index"`
}

// TableName specifies the table name
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// BeforeCreate assigns the id
func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// ParseEntityType accepts an entity type in any case
func ParseEntityType(raw string) (EntityType, bool) {
	switch t := EntityType(strings.ToUpper(strings.TrimSpace(raw))); t {
	case EntityProduct, EntityCategory:
		return t, true
	}
	return "", false
}

// Snapshot converts a record or change set into the stored JSON form
func Snapshot(v interface{}) datatypes.JSONMap {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	m := datatypes.JSONMap{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// ListFilter narrows a log read. Zero Limit means DefaultListLimit.
type ListFilter struct {
	EntityType EntityType
	Limit      int
}

// Recorder appends audit entries on behalf of write operations. It never fails the caller.
type Recorder interface {
	Record(ctx context.Context, entry *ActivityLog)
}

// ActivityLogRepository is append-only
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *ActivityLog) error
	List(ctx context.Context, filter ListFilter) ([]ActivityLog, error)
	FindByEntity(ctx context.Context, entityID string, limit int) ([]ActivityLog, error)
}
