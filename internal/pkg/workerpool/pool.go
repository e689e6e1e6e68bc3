// Package workerpool runs tasks on a fixed number of goroutines fed by a
// bounded queue. Submission never blocks: when the queue is full the task is
// rejected and the caller decides what to do with it.
package workerpool

import (
	"context"
	"fmt"
	"sync"

	"github.com/piresc/tripindex/internal/pkg/logger"
)

// Task is a unit of work executed by a pool worker
type Task func()

// Pool is a fixed-size worker pool with a bounded queue
type Pool struct {
	name    string
	workers int
	tasks   chan Task

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// New starts a pool of workers goroutines sharing a queue of queueSize tasks
func New(name string, workers, queueSize int) (*Pool, error) {
	if workers < 1 {
		return nil, fmt.Errorf("workerpool %s: workers must be positive, got %d", name, workers)
	}
	if queueSize < 1 {
		return nil, fmt.Errorf("workerpool %s: queue size must be positive, got %d", name, queueSize)
	}

	p := &Pool{
		name:    name,
		workers: workers,
		tasks:   make(chan Task, queueSize),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}

	logger.Info("Worker pool started",
		logger.String("pool", name),
		logger.Int("workers", workers),
		logger.Int("queue_size", queueSize))

	return p, nil
}

// TrySubmit queues task without blocking. It returns false when the queue is
// full or the pool is shutting down.
func (p *Pool) TrySubmit(task Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return false
	}

	select {
	case p.tasks <- task:
		return true
	default:
		return false
	}
}

// Shutdown stops accepting tasks and waits for queued and running tasks to
// finish, or for ctx to expire.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("Worker pool drained", logger.String("pool", p.name))
		return nil
	case <-ctx.Done():
		logger.Warn("Worker pool shutdown timed out",
			logger.String("pool", p.name),
			logger.Int("pending", len(p.tasks)))
		return fmt.Errorf("workerpool %s: shutdown: %w", p.name, ctx.Err())
	}
}

// Workers returns the number of worker goroutines
func (p *Pool) Workers() int {
	return p.workers
}

// Pending returns the number of queued tasks not yet picked up
func (p *Pool) Pending() int {
	return len(p.tasks)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for task := range p.tasks {
		p.run(id, task)
	}
}

func (p *Pool) run(id int, task Task) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Worker recovered from panic",
				logger.String("pool", p.name),
				logger.Int("worker", id),
				logger.String("panic", fmt.Sprint(r)))
		}
	}()

	task()
}
