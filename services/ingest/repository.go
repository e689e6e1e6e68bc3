package ingest

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/tripindex/services/ingest SpatialRepo,TemporalRepo

// SpatialRepo appends trips to the geohash prefix index
type SpatialRepo interface {
	AppendTrip(ctx context.Context, cell, tripID string) error
}

// TemporalRepo maintains the time and origin-destination tables
type TemporalRepo interface {
	// Time records
	InsertTripStart(ctx context.Context, tripID string, startTime int64) error
	UpdateTripEnd(ctx context.Context, tripID string, endTime int64) error

	// Origin-destination records
	InsertOrigin(ctx context.Context, tripID, startGeohash string) error
	UpdateDestination(ctx context.Context, tripID, endGeohash string, fare float64) error
}
