package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Messaging MessagingConfig
	NSQ       NSQConfig
	NATS      NATSConfig
	Ingest    IngestConfig
	Query     QueryConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Harness   HarnessConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `validate:"required"`
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int `validate:"min=0,max=65535"`
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int `validate:"min=1"` // seconds
	RateLimit       int `validate:"min=0"` // requests per client per window, 0 disables
	RateLimitWindow int `validate:"min=1"` // seconds
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int `validate:"min=0"`
	IdleConns int `validate:"min=0"`
	Migrate   bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
	Channel  string // pub/sub channel carrying trip events
}

// MessagingConfig selects the delivery channel for trip events
type MessagingConfig struct {
	Driver string `validate:"oneof=redis nsq nats"`
}

// NSQConfig contains NSQ consumer/producer configuration
type NSQConfig struct {
	NSQDAddress      string
	LookupdAddresses []string
	Topic            string
	Channel          string
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL     string
	Subject string
}

// IngestConfig sizes the ingestion worker pool
type IngestConfig struct {
	Workers        int `validate:"min=1"`
	QueueSize      int `validate:"min=1"`
	WriteTimeoutMs int `validate:"min=1"`
}

// QueryConfig contains query engine configuration
type QueryConfig struct {
	TimeoutMs int `validate:"min=1"`
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `validate:"oneof=debug info warn error"`
	FilePath string
}

// HarnessConfig configures the synthetic event publisher
type HarnessConfig struct {
	Publishers        int `validate:"min=1"`
	MessagesPerSecond int `validate:"min=1"`
}
