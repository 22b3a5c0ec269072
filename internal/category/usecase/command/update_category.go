package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/internal/category/domain"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// UpdateCategoryCommand is a partial update: nil fields are left untouched
type UpdateCategoryCommand struct {
	ID          string
	Name        *string
	Description *string
	Icon        *string
}

// UpdateCategoryHandler handles category update command
type UpdateCategoryHandler struct {
	repo     domain.CategoryRepository
	recorder alog.Recorder
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(repo domain.CategoryRepository, recorder alog.Recorder) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo, recorder: recorder}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	existing, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	merged := *existing
	changes := map[string]interface{}{}

	if cmd.Name != nil {
		merged.Name = strings.TrimSpace(*cmd.Name)
		changes["name"] = merged.Name
	}
	if cmd.Description != nil {
		merged.Description = strings.TrimSpace(*cmd.Description)
		changes["description"] = merged.Description
	}
	if cmd.Icon != nil {
		merged.Icon = strings.TrimSpace(*cmd.Icon)
		if merged.Icon == "" {
			merged.Icon = domain.DefaultIcon
		}
		changes["icon"] = merged.Icon
	}

	if err := domain.ValidateCategory(&merged); err != nil {
		return nil, err
	}
	if cmd.Name != nil && !strings.EqualFold(merged.Name, existing.Name) {
		if err := ensureNameFree(ctx, h.repo, existing.ID, merged.Name); err != nil {
			return nil, err
		}
	}

	fields := make(map[string]interface{}, len(changes)+1)
	for k, v := range changes {
		fields[k] = v
	}
	merged.UpdatedAt = time.Now().UTC()
	fields["updated_at"] = merged.UpdatedAt

	if err := h.repo.Update(ctx, existing.ID, fields); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	logger.Info(ctx).
		Str("category_id", merged.ID).
		Int("fields", len(changes)).
		Msg("Category updated")

	h.recorder.Record(ctx, &alog.ActivityLog{
		Action:      alog.ActionUpdate,
		EntityType:  alog.EntityCategory,
		EntityID:    merged.ID,
		EntityName:  merged.Name,
		Description: fmt.Sprintf("Category %q was updated", merged.Name),
		Changes:     alog.Snapshot(changes),
	})

	return &merged, nil
}
