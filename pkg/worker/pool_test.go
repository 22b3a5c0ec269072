package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsSubmittedTasks(t *testing.T) {
	p := NewPool(2, 10, nil)
	p.Start()

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		ok := p.Submit(context.Background(), "count", func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
		require.True(t, ok)
	}

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, int32(5), ran.Load())
}

func TestPoolDropsWhenQueueFull(t *testing.T) {
	var dropped []string
	var mu sync.Mutex
	p := NewPool(1, 1, func(name string) {
		mu.Lock()
		dropped = append(dropped, name)
		mu.Unlock()
	})

	// Not started: the single queue slot fills and the next submit must not block.
	assert.True(t, p.Submit(context.Background(), "first", func(context.Context) error { return nil }))
	assert.False(t, p.Submit(context.Background(), "second", func(context.Context) error { return nil }))

	require.NoError(t, p.Shutdown(context.Background()))
	assert.False(t, p.Submit(context.Background(), "late", func(context.Context) error { return nil }))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"second", "late"}, dropped)
}

func TestPoolToleratesFailuresAndPanics(t *testing.T) {
	p := NewPool(1, 4, nil)
	p.Start()

	var after atomic.Bool
	p.Submit(context.Background(), "fails", func(context.Context) error { return errors.New("boom") })
	p.Submit(context.Background(), "panics", func(context.Context) error { panic("kaboom") })
	p.Submit(context.Background(), "after", func(context.Context) error {
		after.Store(true)
		return nil
	})

	require.NoError(t, p.Shutdown(context.Background()))
	assert.True(t, after.Load())
}

func TestSubmittedTaskOutlivesCallerCancellation(t *testing.T) {
	p := NewPool(1, 1, nil)
	ctx, cancel := context.WithCancel(context.Background())

	var taskErr atomic.Value
	p.Submit(ctx, "detached", func(taskCtx context.Context) error {
		taskErr.Store(taskCtx.Err() == nil)
		return nil
	})
	cancel()

	p.Start()
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, true, taskErr.Load())
}

func TestShutdownHonoursDeadline(t *testing.T) {
	p := NewPool(1, 1, nil)
	p.Start()

	release := make(chan struct{})
	p.Submit(context.Background(), "slow", func(context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Shutdown(ctx), context.DeadlineExceeded)
	close(release)
}
