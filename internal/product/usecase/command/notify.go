package command

import (
	"context"
	"errors"
	"fmt"

	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/kafka"
)

// StockNotifier receives every committed stock change
type StockNotifier interface {
	StockChanged(ctx context.Context, event kafka.StockEvent)
}

// Dependencies shared by all product command handlers
type Dependencies struct {
	Repo     domain.ProductRepository
	Recorder alog.Recorder
	Notifier StockNotifier
}

func (d Dependencies) notify(ctx context.Context, eventType string, p *domain.Product) {
	if d.Notifier == nil {
		return
	}
	d.Notifier.StockChanged(ctx, kafka.StockEvent{
		EventType:    eventType,
		ProductID:    p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		Status:       string(p.Status),
	})
}

// notifyLowStock emits stock.low when a write moves a product into low or out of stock
func (d Dependencies) notifyLowStock(ctx context.Context, previous domain.StockStatus, p *domain.Product) {
	if p.Status.NeedsReorder() && p.Status != previous {
		d.notify(ctx, kafka.EventTypeStockLow, p)
	}
}

func (d Dependencies) record(ctx context.Context, action alog.Action, p *domain.Product, description string, changes interface{}) {
	d.Recorder.Record(ctx, &alog.ActivityLog{
		Action:      action,
		EntityType:  alog.EntityProduct,
		EntityID:    p.ID,
		EntityName:  p.Name,
		Description: description,
		Changes:     alog.Snapshot(changes),
	})
}

// ensureUnique rejects a SKU or barcode already held by another product
func (d Dependencies) ensureUnique(ctx context.Context, selfID, sku string, barcode *string) error {
	if sku != "" {
		existing, err := d.Repo.FindBySKU(ctx, sku)
		switch {
		case err == nil && existing.ID != selfID:
			return domain.ErrDuplicateSKU
		case err != nil && !errors.Is(err, domain.ErrProductNotFound):
			return fmt.Errorf("failed to check sku: %w", err)
		}
	}
	if barcode != nil {
		existing, err := d.Repo.FindByBarcode(ctx, *barcode)
		switch {
		case err == nil && existing.ID != selfID:
			return domain.ErrDuplicateBarcode
		case err != nil && !errors.Is(err, domain.ErrProductNotFound):
			return fmt.Errorf("failed to check barcode: %w", err)
		}
	}
	return nil
}
