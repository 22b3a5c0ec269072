package command

import (
	"context"
	"fmt"
	"time"

	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/internal/category/domain"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// DeleteCategoryCommand represents the command to deactivate a category
type DeleteCategoryCommand struct {
	ID string
}

// DeleteCategoryHandler handles category deletion command
type DeleteCategoryHandler struct {
	repo     domain.CategoryRepository
	recorder alog.Recorder
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(repo domain.CategoryRepository, recorder alog.Recorder) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{repo: repo, recorder: recorder}
}

// Handle soft-deletes the category. An already inactive category counts as not found.
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	category, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if !category.IsActive {
		return domain.ErrCategoryNotFound
	}

	err = h.repo.Update(ctx, category.ID, map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	logger.Info(ctx).
		Str("category_id", category.ID).
		Str("name", category.Name).
		Msg("Category deactivated")

	h.recorder.Record(ctx, &alog.ActivityLog{
		Action:      alog.ActionDelete,
		EntityType:  alog.EntityCategory,
		EntityID:    category.ID,
		EntityName:  category.Name,
		Description: fmt.Sprintf("Category %q was deleted", category.Name),
	})

	return nil
}
