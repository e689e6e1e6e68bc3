package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tripindex/internal/pkg/config"
	"github.com/piresc/tripindex/internal/pkg/database"
	"github.com/piresc/tripindex/internal/pkg/health"
	"github.com/piresc/tripindex/internal/pkg/logger"
	"github.com/piresc/tripindex/internal/pkg/middleware"
	nrpkg "github.com/piresc/tripindex/internal/pkg/newrelic"
	"github.com/piresc/tripindex/internal/pkg/retry"
	"github.com/piresc/tripindex/internal/pkg/server"
	"github.com/piresc/tripindex/migrations"
	"github.com/piresc/tripindex/services/trips/handler"
	"github.com/piresc/tripindex/services/trips/repository"
	"github.com/piresc/tripindex/services/trips/usecase"
)

func main() {
	appName := "tripindex-api"
	configPath := "config/api.env"
	configs, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)
	if nrApp != nil {
		shutdown.Register("newrelic", func(ctx context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	// stores may still be starting next to us
	retrier := retry.New(retry.DefaultConfig())

	postgresClient, err := retry.Connect(context.Background(), retrier, "postgres", func() (*database.PostgresClient, error) {
		return database.NewPostgresClient(configs.Database)
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register("postgres", func(ctx context.Context) error {
		return postgresClient.Close()
	})

	if configs.Database.Migrate {
		if err := migrations.Apply(context.Background(), postgresClient.GetPool()); err != nil {
			zapLogger.Fatal("Failed to apply migrations", logger.Err(err))
		}
	}

	redisClient, err := retry.Connect(context.Background(), retrier, "redis", func() (*database.RedisClient, error) {
		return database.NewRedisClient(configs.Redis)
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	geoRepo := repository.NewGeoRepository(redisClient)
	tripRepo := repository.NewTripRepository(postgresClient.GetDB())
	tripUC := usecase.NewTripUC(geoRepo, tripRepo, configs)

	e := echo.New()
	e.HideBanner = true

	// panic recovery should be first
	e.Use(middleware.PanicRecovery(zapLogger))
	e.Use(middleware.NewRelic(nrApp))
	e.Use(middleware.RequestID())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.HealthChecker{
		"postgres": health.NewPostgresHealthChecker(postgresClient),
		"redis":    health.NewRedisHealthChecker(redisClient),
	})

	rateLimiter := middleware.RateLimiter(middleware.RateLimiterConfig{
		RedisClient: redisClient,
		Limit:       configs.Server.RateLimit,
		Period:      time.Duration(configs.Server.RateLimitWindow) * time.Second,
	})
	handler.NewHandler(tripUC).RegisterRoutes(e, rateLimiter)

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("HTTP server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := shutdown.Shutdown(ctx); err != nil {
		zapLogger.Error("Shutdown completed with errors", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
