package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

var tracer = otel.Tracer("product-repository")

// ProductRepositoryWithTracing wraps a ProductRepository with spans
type ProductRepositoryWithTracing struct {
	next domain.ProductRepository
}

// NewProductRepositoryWithTracing creates a new repository with tracing
func NewProductRepositoryWithTracing(next domain.ProductRepository) *ProductRepositoryWithTracing {
	return &ProductRepositoryWithTracing{next: next}
}

// Create with tracing
func (r *ProductRepositoryWithTracing) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.String("product.sku", product.SKU),
			attribute.String("product.category", product.Category),
			attribute.Float64("product.price", product.Price),
			attribute.Int("product.quantity", product.Quantity),
			attribute.String("product.status", string(product.Status)),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, product); err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.String("product.id", product.ID))
	return nil
}

// FindByID with tracing
func (r *ProductRepositoryWithTracing) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.String("product.id", id)),
	)
	defer span.End()

	product, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.sku", product.SKU),
		attribute.String("product.status", string(product.Status)),
	)
	return product, nil
}

// FindBySKU with tracing
func (r *ProductRepositoryWithTracing) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindBySKU",
		trace.WithAttributes(attribute.String("product.sku", sku)),
	)
	defer span.End()

	product, err := r.next.FindBySKU(ctx, sku)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return product, nil
}

// FindByBarcode with tracing
func (r *ProductRepositoryWithTracing) FindByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByBarcode",
		trace.WithAttributes(attribute.String("product.barcode", barcode)),
	)
	defer span.End()

	product, err := r.next.FindByBarcode(ctx, barcode)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return product, nil
}

// FindAll with tracing
func (r *ProductRepositoryWithTracing) FindAll(ctx context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.String("query.category", filter.Category),
			attribute.String("query.status", string(filter.Status)),
		),
	)
	defer span.End()

	products, err := r.next.FindAll(ctx, filter)
	return finishList(span, products, err)
}

// FindAllByName with tracing
func (r *ProductRepositoryWithTracing) FindAllByName(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAllByName")
	defer span.End()

	products, err := r.next.FindAllByName(ctx)
	return finishList(span, products, err)
}

// Search with tracing
func (r *ProductRepositoryWithTracing) Search(ctx context.Context, term string) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.Search",
		trace.WithAttributes(attribute.String("query.term", term)),
	)
	defer span.End()

	products, err := r.next.Search(ctx, term)
	return finishList(span, products, err)
}

// FindLowStock with tracing
func (r *ProductRepositoryWithTracing) FindLowStock(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindLowStock")
	defer span.End()

	products, err := r.next.FindLowStock(ctx)
	return finishList(span, products, err)
}

// Update with tracing
func (r *ProductRepositoryWithTracing) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("product.id", id),
			attribute.Int("update.fields", len(fields)),
		),
	)
	defer span.End()

	if err := r.next.Update(ctx, id, fields); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

// HealStatus with tracing
func (r *ProductRepositoryWithTracing) HealStatus(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.HealStatus",
		trace.WithAttributes(
			attribute.String("product.id", product.ID),
			attribute.String("product.status", string(product.Status)),
		),
	)
	defer span.End()

	if err := r.next.HealStatus(ctx, product); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

// Delete with tracing
func (r *ProductRepositoryWithTracing) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.String("product.id", id)),
	)
	defer span.End()

	if err := r.next.Delete(ctx, id); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

// Count with tracing
func (r *ProductRepositoryWithTracing) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.next.Count(ctx)
	if err != nil {
		recordError(span, err)
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

func finishList(span trace.Span, products []domain.Product, err error) ([]domain.Product, error) {
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
