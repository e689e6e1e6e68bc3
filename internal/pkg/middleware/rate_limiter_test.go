package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/tripindex/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimiterRedis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &database.RedisClient{Client: client}
}

func doLimited(e *echo.Echo, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/trips/timecount", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)
	return rec
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	mr, client := setupLimiterRedis(t)
	e := echo.New()
	mw := RateLimiter(RateLimiterConfig{RedisClient: client, Limit: 2, Period: time.Minute})

	assert.Equal(t, http.StatusOK, doLimited(e, mw).Code)
	rec := doLimited(e, mw)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = doLimited(e, mw)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Rate limit exceeded", rec.Body.String())
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	assert.True(t, mr.TTL("rate:limit:10.0.0.1") > 0)
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	mr, client := setupLimiterRedis(t)
	e := echo.New()
	mw := RateLimiter(RateLimiterConfig{RedisClient: client, Limit: 1, Period: time.Second})

	assert.Equal(t, http.StatusOK, doLimited(e, mw).Code)
	assert.Equal(t, http.StatusTooManyRequests, doLimited(e, mw).Code)

	mr.FastForward(2 * time.Second)
	assert.Equal(t, http.StatusOK, doLimited(e, mw).Code)
}

func TestRateLimiter_DisabledAndFailOpen(t *testing.T) {
	e := echo.New()

	disabled := RateLimiter(RateLimiterConfig{Limit: 0})
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doLimited(e, disabled).Code)
	}

	mr, client := setupLimiterRedis(t)
	mr.Close()
	mw := RateLimiter(RateLimiterConfig{RedisClient: client, Limit: 1, Period: time.Minute})
	assert.Equal(t, http.StatusOK, doLimited(e, mw).Code)
	assert.Equal(t, http.StatusOK, doLimited(e, mw).Code)
}
