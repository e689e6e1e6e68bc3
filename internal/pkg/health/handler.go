package health

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tripindex/internal/pkg/logger"
)

// readyTimeout bounds each dependency check behind /ready
const readyTimeout = 2 * time.Second

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName
	buildInfo.Hostname = hostname

	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// NewReadyHandler checks every dependency and answers 503 listing the ones that failed
func NewReadyHandler(checkers map[string]HealthChecker) echo.HandlerFunc {
	names := make([]string, 0, len(checkers))
	for name := range checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c echo.Context) error {
		var failed []string
		for _, name := range names {
			ctx, cancel := context.WithTimeout(c.Request().Context(), readyTimeout)
			err := checkers[name].CheckHealth(ctx)
			cancel()

			if err != nil {
				logger.Warn("Dependency not ready",
					logger.String("dependency", name),
					logger.Err(err))
				failed = append(failed, fmt.Sprintf("%s: %v", name, err))
			}
		}

		if len(failed) > 0 {
			return c.String(http.StatusServiceUnavailable, "NOT READY\n"+strings.Join(failed, "\n"))
		}
		return c.String(http.StatusOK, "OK")
	}
}

// RegisterHealthEndpoints registers the health check endpoints. /ready is
// backed by the given dependency checkers.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers map[string]HealthChecker) {
	e.GET("/ping", NewPingHandler(serviceName))

	live := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", live)
	e.GET("/healthz", live)

	e.GET("/ready", NewReadyHandler(checkers))
}
