// Package runner distributes independent units of sieve work across a
// bounded set of goroutines. Work is claimed dynamically, never
// pre-partitioned, so a worker that finishes a cheap segment immediately
// picks up the next one.
package runner

import (
	"context"
	"sync"

	"eratos/shut"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Pool executes work with at most `workers` goroutines running at once.
// To create a new Pool, use New.
type Pool[T any] struct {
	workers  int
	sem      *semaphore.Weighted
	wg       *sync.WaitGroup
	shutdown shut.Shutdown
	logger   *zap.Logger
}

// New creates a Pool bound to workers goroutines. workers must be at least 1.
// shutdown manages the lifecycle of the pool's long-lived workers.
func New[T any](workers int, shutdown shut.Shutdown, logger *zap.Logger) *Pool[T] {
	return &Pool[T]{
		workers:  workers,
		sem:      semaphore.NewWeighted(int64(workers)),
		wg:       &sync.WaitGroup{},
		shutdown: shutdown,
		logger:   logger,
	}
}

// Sum runs f over every item on a fixed set of workers and returns the sum of
// the results. Each worker folds the items it claims into a local partial
// sum; partials are combined once, after all workers drain the queue, so the
// shared total is never contended during the parallel phase. The fold is
// associative and commutative, making the result independent of claim order.
func (p *Pool[T]) Sum(items []T, f func(worker int, item T) int64) int64 {
	var (
		tasks    = make(chan T)
		partials = make(chan int64, p.workers)
	)
	for w := 0; w < p.workers; w++ {
		worker := w
		p.shutdown.Go(func(sig chan shut.Signal) error {
			var local int64
			for item := range tasks {
				local += f(worker, item)
			}
			partials <- local
			return nil
		}, shut.WithKey("runner.sum"))
	}
	for _, item := range items {
		tasks <- item
	}
	close(tasks)
	var total int64
	for w := 0; w < p.workers; w++ {
		total += <-partials
	}
	p.logger.Debug("pool sum complete", zap.Int("workers", p.workers), zap.Int("items", len(items)))
	return total
}

// Exec runs f over every item, one goroutine per item, with concurrency
// bounded by the pool's weighted semaphore. It blocks until every item has
// been processed. f is responsible for publishing its own results safely.
func (p *Pool[T]) Exec(ctx context.Context, items []T, f func(item T)) error {
	for _, item := range items {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			p.logger.Warn("pool acquire failed", zap.Error(err))
			return err
		}
		p.wg.Add(1)
		go func(item T) {
			defer p.wg.Done()
			defer p.sem.Release(1)
			f(item)
		}(item)
	}
	p.wg.Wait()
	return nil
}
