package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tripindex/internal/pkg/constants"
	"github.com/piresc/tripindex/internal/pkg/database"
	"github.com/piresc/tripindex/internal/pkg/logger"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *database.RedisClient
	Limit       int           // Maximum number of requests per client
	Period      time.Duration // Window the limit applies to
}

// RateLimiter counts requests per client IP in fixed Redis windows and answers
// 429 once the limit is exceeded. A non-positive limit disables it.
func RateLimiter(config RateLimiterConfig) echo.MiddlewareFunc {
	if config.Limit <= 0 || config.RedisClient == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf(constants.KeyRateLimit, c.RealIP())

			count, err := config.RedisClient.Incr(ctx, key)
			if err != nil {
				// the limiter never blocks queries on its own failure
				logger.Warn("Rate limiter unavailable", logger.Err(err))
				return next(c)
			}
			if count == 1 {
				if err := config.RedisClient.Expire(ctx, key, config.Period); err != nil {
					logger.Warn("Failed to set rate limit window", logger.Err(err))
				}
			}

			remaining := int64(config.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(config.Limit) {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(config.Period.Seconds())))
				return c.String(http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}
