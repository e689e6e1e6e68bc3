package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tripindex/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestTextResponse(t *testing.T) {
	c, rec := newContext()

	err := TextResponse(c, http.StatusOK, "Number of trips that have passed through this geo rect is: 3")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Number of trips that have passed through this geo rect is: 3", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
}

func TestDefaultMessages(t *testing.T) {
	tests := []struct {
		name     string
		respond  func(echo.Context, string) error
		code     int
		expected string
	}{
		{name: "bad request", respond: BadRequestResponse, code: http.StatusBadRequest, expected: "Bad request"},
		{name: "internal error", respond: InternalServerErrorResponse, code: http.StatusInternalServerError, expected: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			assert.NoError(t, tt.respond(c, ""))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.expected, rec.Body.String())
		})
	}
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		expected string
	}{
		{
			name:     "validation error",
			err:      apperror.NewValidationError(nil, "Request parameters are missing: from", nil),
			code:     http.StatusBadRequest,
			expected: "Request parameters are missing: from",
		},
		{
			name:     "storage error",
			err:      apperror.NewStorageError("count time range", errors.New("connection refused")),
			code:     http.StatusInternalServerError,
			expected: "storage: count time range: connection refused",
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			code:     http.StatusInternalServerError,
			expected: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			assert.NoError(t, ErrorResponse(c, tt.err))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.expected, rec.Body.String())
		})
	}
}
