package newrelic

import (
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tripindex/internal/pkg/logger"
	"github.com/piresc/tripindex/internal/pkg/models"
)

// InitNewRelic initializes New Relic application based on configuration.
// It returns nil when the agent is disabled or cannot start.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	appName := configs.NewRelic.AppName
	if appName == "" {
		appName = configs.App.Name
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic", logger.Err(err))
		return nil
	}

	if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
		logger.Warn("New Relic connection timeout", logger.Err(err))
	}

	logger.Info("New Relic enabled", logger.String("app_name", appName))
	return nrApp
}
