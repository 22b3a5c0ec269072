package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/worker"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []kafka.StockEvent
	err    error
}

func (f *fakePublisher) PublishStockEvent(_ context.Context, event kafka.StockEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.err
}

type fakeCache struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeCache) Invalidate(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return nil
}

func drain(t *testing.T, pool *worker.Pool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, pool.Shutdown(ctx))
}

func TestStockChangedPublishesAndInvalidates(t *testing.T) {
	pool := worker.NewPool(2, 16, nil)
	pool.Start()
	pub := &fakePublisher{}
	cache := &fakeCache{}

	n := NewNotifier(pool, pub, cache)
	n.StockChanged(context.Background(), kafka.StockEvent{EventType: kafka.EventTypeProductUpdated, ProductID: "p1"})
	n.StockChanged(context.Background(), kafka.StockEvent{EventType: kafka.EventTypeStockLow, ProductID: "p1"})
	drain(t, pool)

	assert.Len(t, pub.events, 2)
	assert.Equal(t, 1, cache.calls)
}

func TestStockChangedToleratesFailuresAndMissingSinks(t *testing.T) {
	pool := worker.NewPool(1, 4, nil)
	pool.Start()

	NewNotifier(pool, &fakePublisher{err: errors.New("broker down")}, nil).
		StockChanged(context.Background(), kafka.StockEvent{EventType: kafka.EventTypeProductDeleted})
	NewNotifier(pool, nil, nil).
		StockChanged(context.Background(), kafka.StockEvent{EventType: kafka.EventTypeProductCreated})

	var nilNotifier *Notifier
	assert.NotPanics(t, func() {
		nilNotifier.StockChanged(context.Background(), kafka.StockEvent{})
	})
	drain(t, pool)
}

type busyPool struct{}

func (busyPool) Submit(context.Context, string, worker.Task) bool { return false }

func TestInvalidationDoesNotDependOnThePool(t *testing.T) {
	pub := &fakePublisher{}
	cache := &fakeCache{}

	NewNotifier(busyPool{}, pub, cache).
		StockChanged(context.Background(), kafka.StockEvent{EventType: kafka.EventTypeProductCreated, ProductID: "p2"})

	assert.Equal(t, 1, cache.calls, "invalidated before StockChanged returns")
	assert.Empty(t, pub.events)
}
