package trips

import (
	"context"

	"github.com/piresc/tripindex/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/tripindex/services/trips TripUC

// TripUC answers trip count and fare queries
type TripUC interface {
	// CountTripsInCells counts trips recorded in the given geohash cells
	CountTripsInCells(ctx context.Context, cells []string) (int64, error)
	// AggregateStartEnd sums trip count and fares of trips starting or ending in the cells
	AggregateStartEnd(ctx context.Context, cells []string) (*models.GeoTripData, error)
	// CountTripsInTimeRange counts trips wholly inside the time range
	CountTripsInTimeRange(ctx context.Context, timeRange models.TimeRange) (int64, error)
}
