package repository

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tripindex/internal/pkg/apperror"
	"github.com/piresc/tripindex/internal/pkg/constants"
	"github.com/piresc/tripindex/internal/pkg/database"
	nrpkg "github.com/piresc/tripindex/internal/pkg/newrelic"
	"github.com/piresc/tripindex/services/trips"
)

type geoRepo struct {
	redisClient *database.RedisClient
}

// NewGeoRepository creates a reader over the Redis geohash prefix index
func NewGeoRepository(redisClient *database.RedisClient) trips.GeoRepo {
	return &geoRepo{
		redisClient: redisClient,
	}
}

// TripsInCell returns every trip id appended to the cell
func (r *geoRepo) TripsInCell(ctx context.Context, cell string) ([]string, error) {
	key := fmt.Sprintf(constants.KeyGeoTrips, cell)

	end := nrpkg.StartDatastoreSegment(ctx, newrelic.DatastoreRedis, key, "LRANGE")
	defer end()

	tripIDs, err := r.redisClient.LRange(ctx, key, 0, -1)
	if err != nil {
		return nil, apperror.NewStorageError(fmt.Sprintf("list trips in cell %s", cell), err)
	}
	return tripIDs, nil
}
