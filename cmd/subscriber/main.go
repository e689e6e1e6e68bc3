package main

import (
	"context"
	"log"
	"time"

	"github.com/piresc/tripindex/internal/pkg/config"
	"github.com/piresc/tripindex/internal/pkg/database"
	"github.com/piresc/tripindex/internal/pkg/logger"
	nrpkg "github.com/piresc/tripindex/internal/pkg/newrelic"
	"github.com/piresc/tripindex/internal/pkg/retry"
	"github.com/piresc/tripindex/internal/pkg/server"
	"github.com/piresc/tripindex/migrations"
	"github.com/piresc/tripindex/services/ingest/handler"
	"github.com/piresc/tripindex/services/ingest/repository"
	"github.com/piresc/tripindex/services/ingest/usecase"
)

func main() {
	appName := "tripindex-subscriber"
	configPath := "config/subscriber.env"
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
		logger.String("driver", configs.Messaging.Driver),
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

	spatialRepo := repository.NewSpatialRepository(redisClient)
	temporalRepo := repository.NewTemporalRepository(postgresClient.GetDB())
	ingestUC := usecase.NewIngestUC(spatialRepo, temporalRepo, configs)

	dispatcher, err := handler.NewDispatcher(ingestUC, configs, nrApp)
	if err != nil {
		zapLogger.Fatal("Failed to create dispatcher", logger.Err(err))
	}
	shutdown.Register("dispatcher", dispatcher.Shutdown)

	source, closeSource, err := handler.NewSource(configs, redisClient)
	if err != nil {
		zapLogger.Fatal("Failed to create message source", logger.Err(err))
	}
	shutdown.Register("source-connection", func(ctx context.Context) error {
		closeSource()
		return nil
	})

	if err := source.Start(context.Background(), dispatcher.Handler()); err != nil {
		zapLogger.Fatal("Failed to start message source", logger.Err(err))
	}
	shutdown.Register("source", func(ctx context.Context) error {
		source.Stop()
		return nil
	})

	logger.Info("Subscriber ready",
		logger.Int("workers", configs.Ingest.Workers),
		logger.Int("queue_size", configs.Ingest.QueueSize))

	sig := server.WaitForSignal(context.Background())
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := shutdown.Shutdown(ctx); err != nil {
		zapLogger.Error("Shutdown completed with errors", logger.Err(err))
	}

	zapLogger.Info("Subscriber exiting gracefully")
	_ = zapLogger.Sync()
}
