package ingest

import (
	"context"

	"github.com/piresc/tripindex/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/tripindex/services/ingest IngestUC

// IngestUC fans a validated trip event out to the spatial and temporal stores
type IngestUC interface {
	// IndexEvent attempts every write the event calls for. Failed writes are
	// logged and joined into the returned error; none are retried.
	IndexEvent(ctx context.Context, event *models.TripEvent) error
}
