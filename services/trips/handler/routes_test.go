package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/tripindex/internal/pkg/models"
	"github.com/piresc/tripindex/services/trips/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	mockTripUC.EXPECT().CountTripsInTimeRange(gomock.Any(), models.TimeRange{From: 1, Until: 2}).Return(int64(0), nil)

	e := echo.New()
	NewHandler(mockTripUC).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/api/trips/timecount?from=1&to=2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Number of trips that occurred between the epochs 1 and 2 is: 0", rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/api/trips/geocount", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
