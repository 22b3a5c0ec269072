package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// EntityHistoryQuery reads every entry for one entity
type EntityHistoryQuery struct {
	EntityID string
	Limit    int
}

// EntityHistoryHandler handles entity history query
type EntityHistoryHandler struct {
	repo domain.ActivityLogRepository
}

// NewEntityHistoryHandler creates a new entity history handler
func NewEntityHistoryHandler(repo domain.ActivityLogRepository) *EntityHistoryHandler {
	return &EntityHistoryHandler{repo: repo}
}

// Handle executes the entity history query. An unknown id yields an empty history, since deleted
// entities keep their trail.
func (h *EntityHistoryHandler) Handle(ctx context.Context, q EntityHistoryQuery) ([]domain.ActivityLog, error) {
	id := strings.TrimSpace(q.EntityID)
	if id == "" {
		v := &apperror.ValidationError{}
		v.Add("entityId", "is required")
		return nil, v
	}

	logs, err := h.repo.FindByEntity(ctx, id, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read entity history: %w", err)
	}
	return logs, nil
}
