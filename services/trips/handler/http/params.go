package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tripindex/internal/pkg/apperror"
	"github.com/piresc/tripindex/internal/pkg/models"
)

// parseTimeRange reads from/to epoch millis. A missing to means now.
func parseTimeRange(c echo.Context) (models.TimeRange, error) {
	from := c.QueryParam("from")
	to := c.QueryParam("to")

	if from == "" {
		return models.TimeRange{}, invalidParams("Request parameters are missing: from='%s', to='%s'", from, to)
	}

	fromMillis, err := strconv.ParseInt(strings.TrimSpace(from), 10, 64)
	if err != nil {
		return models.TimeRange{}, invalidParams("Request parameters not of numeric type: from='%s', to='%s'", from, to)
	}

	if to == "" {
		return models.TimeRange{From: fromMillis, Until: models.NowMillis()}, nil
	}

	toMillis, err := strconv.ParseInt(strings.TrimSpace(to), 10, 64)
	if err != nil {
		return models.TimeRange{}, invalidParams("Request parameters not of numeric type: from='%s', to='%s'", from, to)
	}

	return models.TimeRange{From: fromMillis, Until: toMillis}, nil
}

// parseBoundingRect reads the nw and se corners, each given as "lat,lng"
func parseBoundingRect(c echo.Context) (models.BoundingRect, error) {
	nwStr := c.QueryParam("nw")
	seStr := c.QueryParam("se")

	if nwStr == "" || seStr == "" {
		return models.BoundingRect{}, invalidParams("Request parameters are missing: nw='%s', se='%s'", nwStr, seStr)
	}

	nw := splitCoordinates(nwStr)
	se := splitCoordinates(seStr)
	if len(nw) < 2 || len(se) < 2 {
		return models.BoundingRect{}, invalidParams("Lat/long request parameters are missing comma separator: nw='%s', se='%s'", nwStr, seStr)
	}

	nwPoint, nwErr := parsePoint(nw)
	sePoint, seErr := parsePoint(se)
	if nwErr != nil || seErr != nil {
		return models.BoundingRect{}, invalidParams("Request parameters not of numeric type: nw='%s', se='%s'",
			nw[0]+","+nw[1], se[0]+","+se[1])
	}

	if !validPoint(nwPoint) || !validPoint(sePoint) {
		return models.BoundingRect{}, invalidParams("Lat/long request parameters are out of range: nw='%s', se='%s'", nwStr, seStr)
	}

	return models.BoundingRect{NorthWest: nwPoint, SouthEast: sePoint}, nil
}

// splitCoordinates splits on commas and drops trailing empty parts, so "1," has no separator
func splitCoordinates(s string) []string {
	parts := strings.Split(s, ",")
	for len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func parsePoint(parts []string) (models.GeoPoint, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.GeoPoint{}, err
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.GeoPoint{}, err
	}
	return models.GeoPoint{Latitude: lat, Longitude: lng}, nil
}

func validPoint(p models.GeoPoint) bool {
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

func invalidParams(format string, args ...interface{}) error {
	return apperror.NewValidationError(nil, fmt.Sprintf(format, args...), nil)
}
