package usecase

import (
	"context"
	"time"

	"github.com/piresc/tripindex/internal/pkg/apperror"
	"github.com/piresc/tripindex/internal/pkg/logger"
	"github.com/piresc/tripindex/internal/pkg/models"
	"github.com/piresc/tripindex/services/trips"
	"golang.org/x/sync/errgroup"
)

// TripUC implements the trips.TripUC interface
type TripUC struct {
	geoRepo      trips.GeoRepo
	tripRepo     trips.TripRepo
	queryTimeout time.Duration
}

// NewTripUC creates a new trip query use case
func NewTripUC(geoRepo trips.GeoRepo, tripRepo trips.TripRepo, cfg *models.Config) trips.TripUC {
	return &TripUC{
		geoRepo:      geoRepo,
		tripRepo:     tripRepo,
		queryTimeout: time.Duration(cfg.Query.TimeoutMs) * time.Millisecond,
	}
}

// CountTripsInCells looks every cell up concurrently. A single cell yields its
// raw entry count; several cells yield the number of distinct trip ids.
// The first failing lookup cancels the rest and fails the call.
func (uc *TripUC) CountTripsInCells(ctx context.Context, cells []string) (int64, error) {
	if len(cells) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	results := make([][]string, len(cells))
	g, gctx := errgroup.WithContext(ctx)
	for i, cell := range cells {
		g.Go(func() error {
			tripIDs, err := uc.geoRepo.TripsInCell(gctx, cell)
			if err != nil {
				return apperror.PartialAggregation(cell, err)
			}
			results[i] = tripIDs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.ErrorCtx(ctx, "Failed to count trips in cells",
			logger.Strings("cells", cells),
			logger.Err(err))
		return 0, err
	}

	if len(cells) == 1 {
		return int64(len(results[0])), nil
	}

	unique := make(map[string]struct{})
	for _, tripIDs := range results {
		for _, id := range tripIDs {
			unique[id] = struct{}{}
		}
	}
	return int64(len(unique)), nil
}

// AggregateStartEnd sums the per-cell counts and fares. A trip matched in two
// cells is counted in both.
func (uc *TripUC) AggregateStartEnd(ctx context.Context, cells []string) (*models.GeoTripData, error) {
	total := &models.GeoTripData{}
	if len(cells) == 0 {
		return total, nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	results := make([]*models.GeoTripData, len(cells))
	g, gctx := errgroup.WithContext(ctx)
	for i, cell := range cells {
		g.Go(func() error {
			data, err := uc.tripRepo.StartEndInCell(gctx, cell)
			if err != nil {
				return apperror.PartialAggregation(cell, err)
			}
			results[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.ErrorCtx(ctx, "Failed to aggregate start/end trips in cells",
			logger.Strings("cells", cells),
			logger.Err(err))
		return nil, err
	}

	for _, data := range results {
		total.TripCount += data.TripCount
		total.FareTotal += data.FareTotal
	}
	return total, nil
}

// CountTripsInTimeRange counts trips with start_time >= From and end_time <= Until
func (uc *TripUC) CountTripsInTimeRange(ctx context.Context, timeRange models.TimeRange) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	count, err := uc.tripRepo.CountTripsInTimeRange(ctx, timeRange)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to count trips in time range",
			logger.Int64("from", timeRange.From),
			logger.Int64("until", timeRange.Until),
			logger.Err(err))
		return 0, err
	}
	return count, nil
}
