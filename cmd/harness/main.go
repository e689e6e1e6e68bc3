package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/piresc/tripindex/internal/harness"
	"github.com/piresc/tripindex/internal/pkg/config"
	"github.com/piresc/tripindex/internal/pkg/logger"
)

func main() {
	configPath := "config/harness.env"
	configs, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	publisher, closePublisher, err := harness.NewPublisher(configs)
	if err != nil {
		zapLogger.Fatal("Failed to connect publisher", logger.Err(err))
	}
	defer closePublisher()

	h, err := harness.New(publisher, configs.Harness.Publishers, configs.Harness.MessagesPerSecond)
	if err != nil {
		zapLogger.Fatal("Invalid harness configuration", logger.Err(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting test harness",
		logger.String("driver", configs.Messaging.Driver),
		logger.Int("publishers", configs.Harness.Publishers),
		logger.Int("messages_per_second", configs.Harness.MessagesPerSecond))

	if err := h.Run(ctx); err != nil {
		zapLogger.Error("Harness stopped with error", logger.Err(err))
	}

	stats := h.Stats()
	logger.Info("Test harness stopped",
		logger.Int64("published", stats.Published),
		logger.Int64("failed", stats.Failed))
	_ = zapLogger.Sync()
}
