package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tripindex/internal/pkg/logger"
	nrpkg "github.com/piresc/tripindex/internal/pkg/newrelic"
	"github.com/piresc/tripindex/internal/utils"
	"github.com/piresc/tripindex/services/trips"
)

// TripsHandler serves the trip query endpoints
type TripsHandler struct {
	tripUC trips.TripUC
}

// NewTripsHandler creates a new trips HTTP handler
func NewTripsHandler(tripUC trips.TripUC) *TripsHandler {
	return &TripsHandler{
		tripUC: tripUC,
	}
}

// GetTimeCount counts trips that began and ended inside [from, to]
func (h *TripsHandler) GetTimeCount(c echo.Context) error {
	ctx := c.Request().Context()

	timeRange, err := parseTimeRange(c)
	if err != nil {
		logger.WarnCtx(ctx, "Invalid time count request", logger.Err(err))
		return utils.ErrorResponse(c, err)
	}

	count, err := h.tripUC.CountTripsInTimeRange(ctx, timeRange)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to count trips by time",
			logger.Int64("from", timeRange.From),
			logger.Int64("to", timeRange.Until),
			logger.Err(err))
		nrpkg.NoticeError(ctx, err)
		return utils.ErrorResponse(c, err)
	}

	return utils.TextResponse(c, http.StatusOK,
		fmt.Sprintf("Number of trips that occurred between the epochs %d and %d is: %d", timeRange.From, timeRange.Until, count))
}

// GetGeoCount counts trips that passed through the requested rectangle
func (h *TripsHandler) GetGeoCount(c echo.Context) error {
	ctx := c.Request().Context()

	rect, err := parseBoundingRect(c)
	if err != nil {
		logger.WarnCtx(ctx, "Invalid geo count request", logger.Err(err))
		return utils.ErrorResponse(c, err)
	}

	cells := utils.ResolveCells(rect)
	nrpkg.AddAttribute(ctx, "geohash.cells", len(cells))

	count, err := h.tripUC.CountTripsInCells(ctx, cells)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to count trips in geo rect",
			logger.Strings("cells", cells),
			logger.Err(err))
		nrpkg.NoticeError(ctx, err)
		return utils.ErrorResponse(c, err)
	}

	return utils.TextResponse(c, http.StatusOK,
		fmt.Sprintf("Number of trips that have passed through this geo rect is: %d", count))
}

// GetGeoValue counts trips started or stopped in the requested rectangle and totals their fares
func (h *TripsHandler) GetGeoValue(c echo.Context) error {
	ctx := c.Request().Context()

	rect, err := parseBoundingRect(c)
	if err != nil {
		logger.WarnCtx(ctx, "Invalid geo value request", logger.Err(err))
		return utils.ErrorResponse(c, err)
	}

	cells := utils.ResolveCells(rect)
	nrpkg.AddAttribute(ctx, "geohash.cells", len(cells))

	data, err := h.tripUC.AggregateStartEnd(ctx, cells)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to aggregate trips in geo rect",
			logger.Strings("cells", cells),
			logger.Err(err))
		nrpkg.NoticeError(ctx, err)
		return utils.ErrorResponse(c, err)
	}

	return utils.TextResponse(c, http.StatusOK,
		fmt.Sprintf("Number of trips started or stopped in geo rect is: %d, with a total value of $%.2f", data.TripCount, data.FareTotal))
}
