package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	nrpkg "github.com/piresc/tripindex/internal/pkg/newrelic"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
				c.Request().Header.Set(echo.HeaderXRequestID, requestID)
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)

			nrpkg.AddAttribute(c.Request().Context(), "request_id", requestID)
			return next(c)
		}
	}
}
