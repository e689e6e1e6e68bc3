package repository

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tripindex/internal/pkg/apperror"
	"github.com/piresc/tripindex/internal/pkg/constants"
	"github.com/piresc/tripindex/internal/pkg/database"
	nrpkg "github.com/piresc/tripindex/internal/pkg/newrelic"
	"github.com/piresc/tripindex/services/ingest"
)

type spatialRepo struct {
	redisClient *database.RedisClient
}

// NewSpatialRepository creates a geohash prefix index backed by Redis lists
func NewSpatialRepository(redisClient *database.RedisClient) ingest.SpatialRepo {
	return &spatialRepo{
		redisClient: redisClient,
	}
}

// AppendTrip records that tripID passed through cell. Entries are never
// deduplicated, one is appended per event.
func (r *spatialRepo) AppendTrip(ctx context.Context, cell, tripID string) error {
	key := fmt.Sprintf(constants.KeyGeoTrips, cell)

	end := nrpkg.StartDatastoreSegment(ctx, newrelic.DatastoreRedis, key, "RPUSH")
	defer end()

	if err := r.redisClient.RPush(ctx, key, tripID); err != nil {
		return apperror.NewStorageError(fmt.Sprintf("append trip %s to cell %s", tripID, cell), err)
	}
	return nil
}
