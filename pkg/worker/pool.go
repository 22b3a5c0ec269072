// Package worker runs best-effort background tasks: work that must never block the request that
// produced it, is never retried, and whose failure is only logged.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tair/inventory-tracker/pkg/logger"
)

// ErrClosed is returned by Submit after Shutdown
var ErrClosed = errors.New("worker pool closed")

// Task is one unit of background work
type Task func(ctx context.Context) error

// DropHook is notified when a task is rejected
type DropHook func(name string)

type job struct {
	name string
	ctx  context.Context
	task Task
}

// Pool is a fixed set of goroutines draining a bounded queue
type Pool struct {
	workers int
	queue   chan job
	onDrop  DropHook

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
	start  sync.Once
}

// NewPool creates a pool; call Start before submitting
func NewPool(workers, queueSize int, onDrop DropHook) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers: workers,
		queue:   make(chan job, queueSize),
		onDrop:  onDrop,
	}
}

// Start launches the workers. Calling it more than once has no effect.
func (p *Pool) Start() {
	p.start.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go p.run()
		}
	})
}

// Submit enqueues a task without blocking. The task receives a context that keeps the caller's
// values (trace, actor) but not its cancellation. It returns false when the task was dropped.
func (p *Pool) Submit(ctx context.Context, name string, task Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.drop(ctx, name, ErrClosed)
		return false
	}

	select {
	case p.queue <- job{name: name, ctx: context.WithoutCancel(ctx), task: task}:
		return true
	default:
		p.drop(ctx, name, errors.New("queue full"))
		return false
	}
}

// Shutdown stops accepting tasks and waits for queued ones to finish or ctx to expire
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	// Make sure a never-started pool still drains.
	p.Start()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for j := range p.queue {
		p.execute(j)
	}
}

func (p *Pool) execute(j job) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(j.ctx).
				Str("task", j.name).
				Str("panic", fmt.Sprint(r)).
				Msg("Background task panicked")
		}
	}()

	if err := j.task(j.ctx); err != nil {
		logger.Warn(j.ctx).Err(err).Str("task", j.name).Msg("Background task failed")
	}
}

func (p *Pool) drop(ctx context.Context, name string, reason error) {
	logger.Warn(ctx).Err(reason).Str("task", name).Msg("Background task dropped")
	if p.onDrop != nil {
		p.onDrop(name)
	}
}
