package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

type recordingRepo struct {
	filter   domain.ListFilter
	entityID string
}

func (r *recordingRepo) Append(context.Context, *domain.ActivityLog) error { return nil }

func (r *recordingRepo) List(_ context.Context, filter domain.ListFilter) ([]domain.ActivityLog, error) {
	r.filter = filter
	return []domain.ActivityLog{}, nil
}

func (r *recordingRepo) FindByEntity(_ context.Context, entityID string, _ int) ([]domain.ActivityLog, error) {
	r.entityID = entityID
	return []domain.ActivityLog{}, nil
}

func TestListNormalizesEntityType(t *testing.T) {
	repo := &recordingRepo{}
	_, err := NewListActivityLogsHandler(repo).Handle(context.Background(), ListActivityLogsQuery{EntityType: "product"})
	require.NoError(t, err)
	assert.Equal(t, domain.EntityProduct, repo.filter.EntityType)
}

func TestListRejectsUnknownEntityType(t *testing.T) {
	repo := &recordingRepo{}
	_, err := NewListActivityLogsHandler(repo).Handle(context.Background(), ListActivityLogsQuery{EntityType: "order"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, "entityType", apperror.FieldsOf(err)[0].Field)
}

func TestListCapsLimit(t *testing.T) {
	repo := &recordingRepo{}
	_, err := NewListActivityLogsHandler(repo).Handle(context.Background(), ListActivityLogsQuery{Limit: 9000})
	require.NoError(t, err)
	assert.Equal(t, domain.MaxListLimit, repo.filter.Limit)

	_, err = NewListActivityLogsHandler(repo).Handle(context.Background(), ListActivityLogsQuery{Limit: -1})
	assert.True(t, apperror.IsValidation(err))
}

func TestEntityHistoryRequiresID(t *testing.T) {
	repo := &recordingRepo{}
	h := NewEntityHistoryHandler(repo)

	_, err := h.Handle(context.Background(), EntityHistoryQuery{EntityID: "  "})
	assert.True(t, apperror.IsValidation(err))

	_, err = h.Handle(context.Background(), EntityHistoryQuery{EntityID: " p1 "})
	require.NoError(t, err)
	assert.Equal(t, "p1", repo.entityID)
}
