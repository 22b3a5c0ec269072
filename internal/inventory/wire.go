//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/notify"
	"github.com/tair/inventory-tracker/internal/report/cache"
	"github.com/tair/inventory-tracker/pkg/metrics"
	"github.com/tair/inventory-tracker/pkg/worker"
)

// InitializeHandlers builds the full object graph. publisher is nil when no broker is configured.
func InitializeHandlers(
	db *gorm.DB,
	pool *worker.Pool,
	publisher notify.EventPublisher,
	reportCache *cache.RedisCache,
	httpMetrics *metrics.HTTP,
	inventoryMetrics *metrics.Inventory,
) (*Handlers, error) {
	wire.Build(AllSet)
	return nil, nil
}
