package handler

import (
	"context"
	"sync/atomic"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tripindex/internal/pkg/logger"
	"github.com/piresc/tripindex/internal/pkg/models"
	nrpkg "github.com/piresc/tripindex/internal/pkg/newrelic"
	"github.com/piresc/tripindex/internal/pkg/workerpool"
	"github.com/piresc/tripindex/services/ingest"
	"github.com/piresc/tripindex/services/ingest/parser"
)

// Dispatcher hands raw trip messages to a bounded worker pool that parses
// and indexes them
type Dispatcher struct {
	ingestUC ingest.IngestUC
	pool     *workerpool.Pool
	nrApp    *newrelic.Application

	dropped   atomic.Int64
	rejected  atomic.Int64
	processed atomic.Int64
}

// NewDispatcher creates a dispatcher with its own worker pool sized from cfg
func NewDispatcher(ingestUC ingest.IngestUC, cfg *models.Config, nrApp *newrelic.Application) (*Dispatcher, error) {
	pool, err := workerpool.New("ingest", cfg.Ingest.Workers, cfg.Ingest.QueueSize)
	if err != nil {
		return nil, err
	}

	return &Dispatcher{
		ingestUC: ingestUC,
		pool:     pool,
		nrApp:    nrApp,
	}, nil
}

// HandleMessage queues raw for indexing. It never blocks and returns false
// when the pool is saturated or shut down.
func (d *Dispatcher) HandleMessage(raw []byte) bool {
	msg := append([]byte(nil), raw...)

	if !d.pool.TrySubmit(func() { d.process(msg) }) {
		d.dropped.Add(1)
		logger.Warn("Dropping trip message, ingest pool unavailable",
			logger.Int("pending", d.pool.Pending()),
			logger.ByteString("message", msg))
		return false
	}
	return true
}

// Handler exposes HandleMessage as an ingest.MessageHandler
func (d *Dispatcher) Handler() ingest.MessageHandler {
	return d.HandleMessage
}

// Shutdown stops intake and drains queued messages until ctx expires
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	err := d.pool.Shutdown(ctx)
	logger.Info("Ingest dispatcher stopped",
		logger.Int64("processed", d.processed.Load()),
		logger.Int64("rejected", d.rejected.Load()),
		logger.Int64("dropped", d.dropped.Load()))
	return err
}

// Stats returns the processed, rejected and dropped message counts
func (d *Dispatcher) Stats() (processed, rejected, dropped int64) {
	return d.processed.Load(), d.rejected.Load(), d.dropped.Load()
}

func (d *Dispatcher) process(raw []byte) {
	ctx, end := nrpkg.StartBackgroundTransaction(context.Background(), d.nrApp, "ingest/trip-event")
	defer end()

	event, err := parser.Parse(raw)
	if err != nil {
		d.rejected.Add(1)
		nrpkg.NoticeError(ctx, err)
		logger.WarnCtx(ctx, "Rejected trip message",
			logger.ByteString("message", raw),
			logger.Err(err))
		return
	}

	nrpkg.AddAttribute(ctx, "trip_id", event.TripID)
	nrpkg.AddAttribute(ctx, "event", event.Kind.String())

	if err := d.ingestUC.IndexEvent(ctx, event); err != nil {
		nrpkg.NoticeError(ctx, err)
	}
	d.processed.Add(1)

	logger.DebugCtx(ctx, "Indexed trip event",
		logger.String("trip_id", event.TripID),
		logger.String("event", event.Kind.String()))
}
