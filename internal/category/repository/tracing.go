package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/inventory-tracker/internal/category/domain"
)

// CategoryRepositoryWithTracing wraps the repository with OpenTelemetry spans
type CategoryRepositoryWithTracing struct {
	next domain.CategoryRepository
}

func NewCategoryRepositoryWithTracing(next domain.CategoryRepository) domain.CategoryRepository {
	return &CategoryRepositoryWithTracing{next: next}
}

var tracer = otel.Tracer("category-repository")

func start(ctx context.Context, name, operation string) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, "CategoryRepository."+name)
	span.SetAttributes(
		attribute.String("db.operation", operation),
		attribute.String("db.table", "categories"),
	)
	return ctx, span
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

func (r *CategoryRepositoryWithTracing) Create(ctx context.Context, category *domain.Category) error {
	ctx, span := start(ctx, "Create", "INSERT")
	defer span.End()
	span.SetAttributes(attribute.String("category.name", category.Name))

	err := r.next.Create(ctx, category)
	if err == nil {
		span.SetAttributes(attribute.String("category.id", category.ID))
	}
	finish(span, err)
	return err
}

func (r *CategoryRepositoryWithTracing) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	ctx, span := start(ctx, "FindByID", "SELECT")
	defer span.End()
	span.SetAttributes(attribute.String("category.id", id))

	category, err := r.next.FindByID(ctx, id)
	finish(span, err)
	return category, err
}

func (r *CategoryRepositoryWithTracing) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	ctx, span := start(ctx, "FindByName", "SELECT")
	defer span.End()
	span.SetAttributes(attribute.String("category.name", name))

	category, err := r.next.FindByName(ctx, name)
	finish(span, err)
	return category, err
}

func (r *CategoryRepositoryWithTracing) FindActive(ctx context.Context) ([]domain.Category, error) {
	ctx, span := start(ctx, "FindActive", "SELECT")
	defer span.End()

	categories, err := r.next.FindActive(ctx)
	span.SetAttributes(attribute.Int("result.count", len(categories)))
	finish(span, err)
	return categories, err
}

func (r *CategoryRepositoryWithTracing) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, span := start(ctx, "Update", "UPDATE")
	defer span.End()
	span.SetAttributes(
		attribute.String("category.id", id),
		attribute.Int("update.fields", len(fields)),
	)

	err := r.next.Update(ctx, id, fields)
	finish(span, err)
	return err
}
