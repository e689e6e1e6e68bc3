package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/piresc/tripindex/internal/pkg/constants"
	"github.com/piresc/tripindex/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the env file at configPath when running locally, then builds
// the configuration from the environment and validates it.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if v.GetString("APP_ENV") == "local" && configPath != "" {
		// Load config from file
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	configs := loadConfig(v)
	if err := Validate(configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// Validate checks the configuration against its struct constraints
func Validate(configs *models.Config) error {
	if err := validator.New().Struct(configs); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_NAME", "tripindex")
	v.SetDefault("APP_DEBUG", false)

	v.SetDefault("SERVER_PORT", 4567)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("SERVER_RATE_LIMIT", 0)
	v.SetDefault("SERVER_RATE_LIMIT_WINDOW", 60)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)
	v.SetDefault("DB_MIGRATE", false)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_CHANNEL", constants.DefaultTripChannel)

	v.SetDefault("MESSAGING_DRIVER", "redis")
	v.SetDefault("NSQD_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_TOPIC", constants.DefaultTripChannel)
	v.SetDefault("NSQ_CHANNEL", "trip_subscriber")
	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NATS_SUBJECT", constants.DefaultTripChannel)

	v.SetDefault("INGEST_WORKERS", 4)
	v.SetDefault("INGEST_QUEUE_SIZE", 16)
	v.SetDefault("WRITE_TIMEOUT_MS", 2000)
	v.SetDefault("QUERY_TIMEOUT_MS", 5000)

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_FORWARD_LOGS", false)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("HARNESS_PUBLISHERS", 5)
	v.SetDefault("HARNESS_MESSAGES_PER_SECOND", 100)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")
	configs.Server.RateLimit = v.GetInt("SERVER_RATE_LIMIT")
	configs.Server.RateLimitWindow = v.GetInt("SERVER_RATE_LIMIT_WINDOW")

	// Database config
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.Migrate = v.GetBool("DB_MIGRATE")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")
	configs.Redis.Channel = v.GetString("REDIS_CHANNEL")

	// Messaging config
	configs.Messaging.Driver = strings.ToLower(v.GetString("MESSAGING_DRIVER"))
	configs.NSQ.NSQDAddress = v.GetString("NSQD_ADDRESS")
	configs.NSQ.LookupdAddresses = splitList(v.GetString("NSQ_LOOKUPD_ADDRESSES"))
	configs.NSQ.Topic = v.GetString("NSQ_TOPIC")
	configs.NSQ.Channel = v.GetString("NSQ_CHANNEL")
	configs.NATS.URL = v.GetString("NATS_URL")
	configs.NATS.Subject = v.GetString("NATS_SUBJECT")

	// Ingestion and query config
	configs.Ingest.Workers = v.GetInt("INGEST_WORKERS")
	configs.Ingest.QueueSize = v.GetInt("INGEST_QUEUE_SIZE")
	configs.Ingest.WriteTimeoutMs = v.GetInt("WRITE_TIMEOUT_MS")
	configs.Query.TimeoutMs = v.GetInt("QUERY_TIMEOUT_MS")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = strings.ToLower(v.GetString("LOG_LEVEL"))
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	// Harness config
	configs.Harness.Publishers = v.GetInt("HARNESS_PUBLISHERS")
	configs.Harness.MessagesPerSecond = v.GetInt("HARNESS_MESSAGES_PER_SECOND")

	return configs
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
