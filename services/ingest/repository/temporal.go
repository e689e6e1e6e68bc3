package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tripindex/internal/pkg/apperror"
	"github.com/piresc/tripindex/internal/pkg/constants"
	"github.com/piresc/tripindex/internal/pkg/logger"
	nrpkg "github.com/piresc/tripindex/internal/pkg/newrelic"
	"github.com/piresc/tripindex/services/ingest"
)

const (
	insertTimeTrip       = `INSERT INTO time_trips (trip_id, start_time) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	updateTimeTripEnd    = `UPDATE time_trips SET end_time = $1 WHERE trip_id = $2`
	insertOriginDestTrip = `INSERT INTO orgn_dst_geo_trips (trip_id, geohash_start) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	updateDestination    = `UPDATE orgn_dst_geo_trips SET geohash_end = $1, fare = $2 WHERE trip_id = $3`
)

type temporalRepo struct {
	db *sqlx.DB
}

// NewTemporalRepository creates the time and origin-destination writer
func NewTemporalRepository(db *sqlx.DB) ingest.TemporalRepo {
	return &temporalRepo{db: db}
}

// InsertTripStart creates the time record of a trip. A second begin for the
// same trip is ignored.
func (r *temporalRepo) InsertTripStart(ctx context.Context, tripID string, startTime int64) error {
	_, err := r.exec(ctx, constants.TableTimeTrips, "INSERT", insertTimeTrip, tripID, startTime)
	if err != nil {
		return apperror.NewStorageError(fmt.Sprintf("insert trip %s start", tripID), err)
	}
	return nil
}

// UpdateTripEnd sets the end time of a trip. A trip without a time record is
// left alone.
func (r *temporalRepo) UpdateTripEnd(ctx context.Context, tripID string, endTime int64) error {
	rows, err := r.exec(ctx, constants.TableTimeTrips, "UPDATE", updateTimeTripEnd, endTime, tripID)
	if err != nil {
		return apperror.NewStorageError(fmt.Sprintf("update trip %s end", tripID), err)
	}
	if rows == 0 {
		logger.Debug("No time record to close",
			logger.String("trip_id", tripID))
	}
	return nil
}

// InsertOrigin creates the origin-destination record of a trip
func (r *temporalRepo) InsertOrigin(ctx context.Context, tripID, startGeohash string) error {
	_, err := r.exec(ctx, constants.TableOriginDestTrips, "INSERT", insertOriginDestTrip, tripID, startGeohash)
	if err != nil {
		return apperror.NewStorageError(fmt.Sprintf("insert trip %s origin", tripID), err)
	}
	return nil
}

// UpdateDestination records where a trip ended and its fare
func (r *temporalRepo) UpdateDestination(ctx context.Context, tripID, endGeohash string, fare float64) error {
	rows, err := r.exec(ctx, constants.TableOriginDestTrips, "UPDATE", updateDestination, endGeohash, fare, tripID)
	if err != nil {
		return apperror.NewStorageError(fmt.Sprintf("update trip %s destination", tripID), err)
	}
	if rows == 0 {
		logger.Debug("No origin record to close",
			logger.String("trip_id", tripID))
	}
	return nil
}

func (r *temporalRepo) exec(ctx context.Context, table, operation, query string, args ...interface{}) (int64, error) {
	end := nrpkg.StartDatastoreSegment(ctx, newrelic.DatastorePostgres, table, operation)
	defer end()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, nil
}
