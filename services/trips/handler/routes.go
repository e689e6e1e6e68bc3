package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tripindex/services/trips"
	httpHandler "github.com/piresc/tripindex/services/trips/handler/http"
)

// Handler wires the trips query endpoints
type Handler struct {
	tripsHTTP *httpHandler.TripsHandler
}

// NewHandler creates a new trips handler
func NewHandler(tripUC trips.TripUC) *Handler {
	return &Handler{
		tripsHTTP: httpHandler.NewTripsHandler(tripUC),
	}
}

// RegisterRoutes registers the query routes under /api/trips
func (h *Handler) RegisterRoutes(e *echo.Echo, middlewares ...echo.MiddlewareFunc) {
	group := e.Group("/api/trips", middlewares...)
	group.GET("/timecount", h.tripsHTTP.GetTimeCount)
	group.GET("/geocount", h.tripsHTTP.GetGeoCount)
	group.GET("/geovalue", h.tripsHTTP.GetGeoValue)
}
