package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tripindex/internal/pkg/apperror"
	"github.com/piresc/tripindex/internal/pkg/constants"
	"github.com/piresc/tripindex/internal/pkg/models"
	nrpkg "github.com/piresc/tripindex/internal/pkg/newrelic"
	"github.com/piresc/tripindex/services/trips"
)

const (
	queryStartEndInCell = `SELECT count(trip_id), sum(fare) FROM orgn_dst_geo_trips WHERE geohash_start LIKE $1 OR geohash_end LIKE $2`
	queryTripsByTime    = `SELECT count(*) FROM time_trips WHERE start_time >= $1 AND end_time <= $2`
)

type tripRepo struct {
	db *sqlx.DB
}

// NewTripRepository creates a reader over the time and origin-destination tables
func NewTripRepository(db *sqlx.DB) trips.TripRepo {
	return &tripRepo{db: db}
}

// StartEndInCell counts trips whose start or end geohash lies in cell and sums
// their fares. Open trips contribute no fare.
func (r *tripRepo) StartEndInCell(ctx context.Context, cell string) (*models.GeoTripData, error) {
	end := nrpkg.StartDatastoreSegment(ctx, newrelic.DatastorePostgres, constants.TableOriginDestTrips, "SELECT")
	defer end()

	pattern := cell + "%"

	var (
		count int64
		sum   sql.NullFloat64
	)
	err := r.db.QueryRowxContext(ctx, queryStartEndInCell, pattern, pattern).Scan(&count, &sum)
	if err != nil {
		return nil, apperror.NewStorageError(fmt.Sprintf("aggregate trips in cell %s", cell), err)
	}

	return &models.GeoTripData{
		TripCount: count,
		FareTotal: sum.Float64,
	}, nil
}

// CountTripsInTimeRange counts trips that started and ended inside the range
func (r *tripRepo) CountTripsInTimeRange(ctx context.Context, timeRange models.TimeRange) (int64, error) {
	end := nrpkg.StartDatastoreSegment(ctx, newrelic.DatastorePostgres, constants.TableTimeTrips, "SELECT")
	defer end()

	var count int64
	if err := r.db.GetContext(ctx, &count, queryTripsByTime, timeRange.From, timeRange.Until); err != nil {
		return 0, apperror.NewStorageError(
			fmt.Sprintf("count trips between %d and %d", timeRange.From, timeRange.Until), err)
	}
	return count, nil
}
