package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/tair/inventory-tracker/internal/activitylog/domain"
)

// ActivityLogRepositoryWithTracing wraps the repository with OpenTelemetry spans
type ActivityLogRepositoryWithTracing struct {
	next domain.ActivityLogRepository
}

func NewActivityLogRepositoryWithTracing(next domain.ActivityLogRepository) domain.ActivityLogRepository {
	return &ActivityLogRepositoryWithTracing{next: next}
}

var tracer = otel.Tracer("activitylog-repository")

func (r *ActivityLogRepositoryWithTracing) Append(ctx context.Context, entry *domain.ActivityLog) error {
	ctx, span := tracer.Start(ctx, "ActivityLogRepository.Append")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.table", "activity_logs"),
		attribute.String("activity.action", string(entry.Action)),
		attribute.String("activity.entity_type", string(entry.EntityType)),
		attribute.String("activity.entity_id", entry.EntityID),
	)

	if err := r.next.Append(ctx, entry); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "entry appended")
	return nil
}

func (r *ActivityLogRepositoryWithTracing) List(ctx context.Context, filter domain.ListFilter) ([]domain.ActivityLog, error) {
	ctx, span := tracer.Start(ctx, "ActivityLogRepository.List")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "activity_logs"),
		attribute.String("filter.entity_type", string(filter.EntityType)),
		attribute.Int("filter.limit", filter.Limit),
	)

	logs, err := r.next.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(logs)))
	span.SetStatus(codes.Ok, "entries listed")
	return logs, nil
}

func (r *ActivityLogRepositoryWithTracing) FindByEntity(ctx context.Context, entityID string, limit int) ([]domain.ActivityLog, error) {
	ctx, span := tracer.Start(ctx, "ActivityLogRepository.FindByEntity")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "activity_logs"),
		attribute.String("activity.entity_id", entityID),
	)

	logs, err := r.next.FindByEntity(ctx, entityID, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(logs)))
	span.SetStatus(codes.Ok, "entries found")
	return logs, nil
}
