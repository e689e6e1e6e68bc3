package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tripindex/internal/pkg/apperror"
)

// TextResponse sends a plain-text response
func TextResponse(c echo.Context, statusCode int, message string) error {
	return c.String(statusCode, message)
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Bad request"
	}
	return TextResponse(c, http.StatusBadRequest, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return TextResponse(c, http.StatusInternalServerError, errorMessage)
}

// ErrorResponse maps err to a status: validation failures are the caller's
// fault, everything else is ours.
func ErrorResponse(c echo.Context, err error) error {
	if apperror.IsValidation(err) {
		return BadRequestResponse(c, err.Error())
	}
	return InternalServerErrorResponse(c, err.Error())
}
