package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/internal/category/domain"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// CreateCategoryCommand represents the command to create a category
type CreateCategoryCommand struct {
	Name        string
	Description string
	Icon        string
}

// CreateCategoryHandler handles category creation command
type CreateCategoryHandler struct {
	repo     domain.CategoryRepository
	recorder alog.Recorder
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository, recorder alog.Recorder) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo, recorder: recorder}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	category := &domain.Category{
		Name:        strings.TrimSpace(cmd.Name),
		Description: strings.TrimSpace(cmd.Description),
		Icon:        strings.TrimSpace(cmd.Icon),
		IsActive:    true,
	}
	if category.Icon == "" {
		category.Icon = domain.DefaultIcon
	}

	if err := domain.ValidateCategory(category); err != nil {
		return nil, err
	}
	if err := ensureNameFree(ctx, h.repo, "", category.Name); err != nil {
		return nil, err
	}

	if err := h.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	logger.Info(ctx).
		Str("category_id", category.ID).
		Str("name", category.Name).
		Msg("Category created")

	h.recorder.Record(ctx, &alog.ActivityLog{
		Action:      alog.ActionCreate,
		EntityType:  alog.EntityCategory,
		EntityID:    category.ID,
		EntityName:  category.Name,
		Description: fmt.Sprintf("Category %q was created", category.Name),
		Changes:     alog.Snapshot(category),
	})

	return category, nil
}

// ensureNameFree rejects a name held by another category, active or not
func ensureNameFree(ctx context.Context, repo domain.CategoryRepository, selfID, name string) error {
	existing, err := repo.FindByName(ctx, name)
	switch {
	case err == nil && existing.ID != selfID:
		return domain.ErrDuplicateCategory
	case err != nil && !errors.Is(err, domain.ErrCategoryNotFound):
		return fmt.Errorf("failed to check category name: %w", err)
	}
	return nil
}
