package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/tripindex/internal/pkg/logger"
	"github.com/piresc/tripindex/internal/pkg/models"
	"github.com/piresc/tripindex/services/ingest"
)

// IngestUC implements the ingest.IngestUC interface
type IngestUC struct {
	spatialRepo  ingest.SpatialRepo
	temporalRepo ingest.TemporalRepo
	writeTimeout time.Duration
}

// NewIngestUC creates a new ingestion use case
func NewIngestUC(spatialRepo ingest.SpatialRepo, temporalRepo ingest.TemporalRepo, cfg *models.Config) ingest.IngestUC {
	return &IngestUC{
		spatialRepo:  spatialRepo,
		temporalRepo: temporalRepo,
		writeTimeout: time.Duration(cfg.Ingest.WriteTimeoutMs) * time.Millisecond,
	}
}

// IndexEvent writes the event to the spatial and temporal stores concurrently
func (uc *IngestUC) IndexEvent(ctx context.Context, event *models.TripEvent) error {
	var (
		wg          sync.WaitGroup
		spatialErr  error
		temporalErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		spatialErr = uc.indexSpatial(ctx, event)
	}()
	go func() {
		defer wg.Done()
		temporalErr = uc.indexTemporal(ctx, event)
	}()
	wg.Wait()

	return errors.Join(spatialErr, temporalErr)
}

// indexSpatial appends the trip under every prefix of its geohash
func (uc *IngestUC) indexSpatial(ctx context.Context, event *models.TripEvent) error {
	var errs []error
	for _, cell := range event.Prefixes() {
		cell := cell
		err := uc.write(ctx, "append trip to cell", event, func(ctx context.Context) error {
			return uc.spatialRepo.AppendTrip(ctx, cell, event.TripID)
		}, logger.String("cell", cell))
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// indexTemporal opens the trip records on begin and closes them on end.
// Updates carry nothing for the relational store.
func (uc *IngestUC) indexTemporal(ctx context.Context, event *models.TripEvent) error {
	switch event.Kind {
	case models.EventBegin:
		hash := event.Geohash()
		return errors.Join(
			uc.write(ctx, "insert trip start", event, func(ctx context.Context) error {
				return uc.temporalRepo.InsertTripStart(ctx, event.TripID, event.Epoch)
			}),
			uc.write(ctx, "insert trip origin", event, func(ctx context.Context) error {
				return uc.temporalRepo.InsertOrigin(ctx, event.TripID, hash)
			}),
		)
	case models.EventEnd:
		hash := event.Geohash()
		var fare float64
		if event.Fare != nil {
			fare = *event.Fare
		}
		return errors.Join(
			uc.write(ctx, "update trip end", event, func(ctx context.Context) error {
				return uc.temporalRepo.UpdateTripEnd(ctx, event.TripID, event.Epoch)
			}),
			uc.write(ctx, "update trip destination", event, func(ctx context.Context) error {
				return uc.temporalRepo.UpdateDestination(ctx, event.TripID, hash, fare)
			}),
		)
	default:
		return nil
	}
}

// write runs one store write under the write timeout and logs its failure
func (uc *IngestUC) write(ctx context.Context, op string, event *models.TripEvent, fn func(ctx context.Context) error, fields ...logger.Field) error {
	writeCtx, cancel := context.WithTimeout(ctx, uc.writeTimeout)
	defer cancel()

	if err := fn(writeCtx); err != nil {
		logger.ErrorCtx(ctx, "Failed to index trip event",
			append(fields,
				logger.String("operation", op),
				logger.String("trip_id", event.TripID),
				logger.String("event", event.Kind.String()),
				logger.Err(err))...)
		return err
	}
	return nil
}
