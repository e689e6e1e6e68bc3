package trips

import (
	"context"

	"github.com/piresc/tripindex/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/tripindex/services/trips GeoRepo,TripRepo

// GeoRepo reads the geohash prefix index
type GeoRepo interface {
	// TripsInCell returns one trip id per recorded event in the cell, duplicates included
	TripsInCell(ctx context.Context, cell string) ([]string, error)
}

// TripRepo reads the time and origin-destination tables
type TripRepo interface {
	StartEndInCell(ctx context.Context, cell string) (*models.GeoTripData, error)
	CountTripsInTimeRange(ctx context.Context, timeRange models.TimeRange) (int64, error)
}
