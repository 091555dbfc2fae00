package ovo

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool bounds the facade's fan-out (scanning, compiling independent
// translation units) to GOMAXPROCS-ish concurrency, grounded on ppb's own
// GetGlobalThreadPool (internal/base/ThreadPool.go sizes its fixed pool at
// runtime.NumCPU()-1) but built on errgroup.Group instead of ppb's own
// priority-queue thread pool: a build has no notion of task priority here,
// only independent units that may run concurrently.
type WorkerPool struct {
	group *errgroup.Group
	ctx   context.Context
}

// NewWorkerPool creates a pool capped at runtime.NumCPU()-1 concurrent
// goroutines (never fewer than 1), matching ppb's own reservation
// of one core for the calling thread.
func NewWorkerPool(ctx context.Context) *WorkerPool {
	g, gctx := errgroup.WithContext(ctx)
	limit := runtime.NumCPU() - 1
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)
	return &WorkerPool{group: g, ctx: gctx}
}

// Go schedules fn, passing it the pool's (possibly already-cancelled)
// context so a sibling failure short-circuits unstarted work.
func (p *WorkerPool) Go(fn func(ctx context.Context) error) {
	p.group.Go(func() error {
		return fn(p.ctx)
	})
}

// Wait blocks until every scheduled task has returned, yielding the first
// non-nil error encountered (errgroup cancels the pool's context as soon as
// one task fails,  step 3's "on failure, return the
// failing result and stop").
func (p *WorkerPool) Wait() error {
	return p.group.Wait()
}
