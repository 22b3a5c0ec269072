// Package notify fans stock changes out to subscribers that must never fail the write that caused
// them: the stock event stream and the cached inventory report.
package notify

import (
	"context"

	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/worker"
)

// EventPublisher sends stock events to the broker
type EventPublisher interface {
	PublishStockEvent(ctx context.Context, event kafka.StockEvent) error
}

// CacheInvalidator drops derived data after a stock change
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Submitter runs background tasks
type Submitter interface {
	Submit(ctx context.Context, name string, task worker.Task) bool
}

// Notifier dispatches stock events. The publisher and cache may each be nil.
type Notifier struct {
	pool      Submitter
	publisher EventPublisher
	cache     CacheInvalidator
}

// NewNotifier creates a new notifier
func NewNotifier(pool Submitter, publisher EventPublisher, cache CacheInvalidator) *Notifier {
	return &Notifier{pool: pool, publisher: publisher, cache: cache}
}

// StockChanged invalidates the report cache before returning, so a report read after the write
// never reflects the old product set. Publishing runs in the background.
func (n *Notifier) StockChanged(ctx context.Context, event kafka.StockEvent) {
	if n == nil {
		return
	}

	if n.publisher != nil {
		n.pool.Submit(ctx, "publish:"+event.EventType, func(ctx context.Context) error {
			return n.publisher.PublishStockEvent(ctx, event)
		})
	}

	if n.cache != nil && event.EventType != kafka.EventTypeStockLow {
		if err := n.cache.Invalidate(ctx); err != nil {
			logger.Error(ctx).
				Err(err).
				Str("event_type", event.EventType).
				Str("product_id", event.ProductID).
				Msg("Failed to invalidate report cache")
		}
	}

	logger.Debug(ctx).
		Str("event_type", event.EventType).
		Str("product_id", event.ProductID).
		Msg("Stock change dispatched")
}
