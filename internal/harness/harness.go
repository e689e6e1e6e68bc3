// Package harness publishes synthetic trip events for load testing the subscriber.
package harness

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/piresc/tripindex/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Stats counts published and failed messages
type Stats struct {
	Published int64
	Failed    int64
}

// Harness runs a number of rate limited publishers
type Harness struct {
	publisher  Publisher
	publishers int
	perSecond  int
	seed       int64

	published atomic.Int64
	failed    atomic.Int64
}

// New creates a harness with publishers goroutines each sending up to
// perSecond messages per second
func New(publisher Publisher, publishers, perSecond int) (*Harness, error) {
	if publisher == nil {
		return nil, errors.New("harness requires a publisher")
	}
	if publishers < 1 || perSecond < 1 {
		return nil, errors.New("publishers and rate must be positive")
	}
	return &Harness{
		publisher:  publisher,
		publishers: publishers,
		perSecond:  perSecond,
		seed:       time.Now().UnixNano(),
	}, nil
}

// Run publishes until ctx is done. Publish failures are counted and logged, never fatal.
func (h *Harness) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < h.publishers; i++ {
		gen := NewGenerator(h.seed+int64(i), DefaultCenter)
		limiter := rate.NewLimiter(rate.Limit(h.perSecond), 1)
		worker := i

		g.Go(func() error {
			logger.Debug("Publisher started", logger.Int("publisher", worker))
			for {
				if err := limiter.Wait(ctx); err != nil {
					return nil
				}
				h.publishOne(ctx, gen, worker)
			}
		})
	}

	return g.Wait()
}

func (h *Harness) publishOne(ctx context.Context, gen *Generator, worker int) {
	payload, err := gen.Next()
	if err == nil {
		err = h.publisher.Publish(ctx, payload)
	}
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("Failed to publish trip event",
				logger.Int("publisher", worker),
				logger.Err(err))
		}
		h.failed.Add(1)
		return
	}
	h.published.Add(1)
}

// Stats returns the counters so far
func (h *Harness) Stats() Stats {
	return Stats{
		Published: h.published.Load(),
		Failed:    h.failed.Load(),
	}
}
