package query

import (
	"context"
	"fmt"

	"github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// ListActivityLogsQuery represents the query to read the audit trail
type ListActivityLogsQuery struct {
	EntityType string // Optional: PRODUCT or CATEGORY
	Limit      int
}

// ListActivityLogsHandler handles list activity logs query
type ListActivityLogsHandler struct {
	repo domain.ActivityLogRepository
}

// NewListActivityLogsHandler creates a new list activity logs handler
func NewListActivityLogsHandler(repo domain.ActivityLogRepository) *ListActivityLogsHandler {
	return &ListActivityLogsHandler{repo: repo}
}

// Handle executes the list activity logs query, newest first
func (h *ListActivityLogsHandler) Handle(ctx context.Context, q ListActivityLogsQuery) ([]domain.ActivityLog, error) {
	filter, err := q.filter()
	if err != nil {
		return nil, err
	}

	logs, err := h.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return logs, nil
}

func (q ListActivityLogsQuery) filter() (domain.ListFilter, error) {
	v := &apperror.ValidationError{}
	filter := domain.ListFilter{Limit: q.Limit}

	if q.EntityType != "" {
		t, ok := domain.ParseEntityType(q.EntityType)
		if !ok {
			v.Add("entityType", "must be PRODUCT or CATEGORY")
		}
		filter.EntityType = t
	}
	if q.Limit < 0 {
		v.Add("limit", "must not be negative")
	}
	if q.Limit > domain.MaxListLimit {
		filter.Limit = domain.MaxListLimit
	}

	return filter, v.OrNil()
}
