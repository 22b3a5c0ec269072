package usecase

import (
	"context"
	"fmt"
	"time"

	pdomain "github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/internal/product/usecase/query"
	"github.com/tair/inventory-tracker/internal/report/domain"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/metrics"
)

// ReportCache holds reports keyed by the product write generation they were built from
type ReportCache interface {
	Get(ctx context.Context) (*domain.InventoryReport, int64, bool)
	Set(ctx context.Context, generation int64, report *domain.InventoryReport)
}

// GenerateReportHandler builds the inventory report, serving it from cache when possible
type GenerateReportHandler struct {
	repo       pdomain.ProductRepository
	reconciler *query.Reconciler
	cache      ReportCache
	metrics    *metrics.Inventory
	now        func() time.Time
}

// NewGenerateReportHandler creates a new report handler. cache may be nil.
func NewGenerateReportHandler(
	repo pdomain.ProductRepository,
	reconciler *query.Reconciler,
	cache ReportCache,
	m *metrics.Inventory,
) *GenerateReportHandler {
	return &GenerateReportHandler{
		repo:       repo,
		reconciler: reconciler,
		cache:      cache,
		metrics:    m,
		now:        time.Now,
	}
}

// Handle executes the report generation
func (h *GenerateReportHandler) Handle(ctx context.Context) (*domain.InventoryReport, error) {
	generation := int64(-1)
	if h.cache != nil {
		cached, gen, ok := h.cache.Get(ctx)
		if ok {
			return cached, nil
		}
		generation = gen
	}

	products, err := h.repo.FindAllByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products for report: %w", err)
	}
	h.reconciler.ReconcileAll(ctx, products)

	report := domain.Aggregate(products, h.now())
	h.metrics.SetProductsByStatus(report.StatusCounts())

	if h.cache != nil {
		h.cache.Set(ctx, generation, &report)
	}

	logger.Info(ctx).
		Int("total_products", report.TotalProducts).
		Str("total_value", report.TotalValue).
		Int("low_stock_items", report.LowStockItems).
		Int("out_of_stock_items", report.OutOfStockItems).
		Msg("Inventory report generated")

	return &report, nil
}
