package query

import (
	"context"
	"fmt"

	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/metrics"
	"github.com/tair/inventory-tracker/pkg/worker"
)

// TaskSubmitter runs best-effort background tasks
type TaskSubmitter interface {
	Submit(ctx context.Context, name string, task worker.Task) bool
}

// Reconciler corrects stored stock statuses that no longer match quantity and reorder level.
// Callers always see the corrected value; the write back to the store is either awaited
// (single reads) or handed to the background pool (list reads).
type Reconciler struct {
	repo    domain.ProductRepository
	pool    TaskSubmitter
	metrics *metrics.Inventory
}

// NewReconciler creates a new reconciler
func NewReconciler(repo domain.ProductRepository, pool TaskSubmitter, m *metrics.Inventory) *Reconciler {
	return &Reconciler{repo: repo, pool: pool, metrics: m}
}

// ReconcileAll corrects every product in place and schedules a heal for each divergent one.
// It returns the number of heals submitted.
func (r *Reconciler) ReconcileAll(ctx context.Context, products []domain.Product) int {
	submitted := 0
	for i := range products {
		if !products[i].Reconcile() {
			continue
		}
		healed := products[i]
		if r.pool.Submit(ctx, "heal:"+healed.ID, func(ctx context.Context) error {
			err := r.repo.HealStatus(ctx, &healed)
			r.metrics.ObserveHeal("async", err)
			return err
		}) {
			submitted++
		}
	}
	if submitted > 0 {
		logger.Debug(ctx).Int("count", submitted).Msg("Scheduled status heals")
	}
	return submitted
}

// ReconcileOne corrects a single product and waits for the heal write
func (r *Reconciler) ReconcileOne(ctx context.Context, product *domain.Product) error {
	if !product.Reconcile() {
		return nil
	}
	err := r.repo.HealStatus(ctx, product)
	r.metrics.ObserveHeal("sync", err)
	if err != nil {
		return fmt.Errorf("failed to heal product status: %w", err)
	}

	logger.Info(ctx).
		Str("product_id", product.ID).
		Str("status", string(product.Status)).
		Msg("Product status healed")
	return nil
}
