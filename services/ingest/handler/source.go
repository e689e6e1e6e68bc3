package handler

import (
	"fmt"

	"github.com/piresc/tripindex/internal/pkg/database"
	"github.com/piresc/tripindex/internal/pkg/models"
	natspkg "github.com/piresc/tripindex/internal/pkg/nats"
	"github.com/piresc/tripindex/services/ingest"
)

// Messaging drivers
const (
	DriverRedis = "redis"
	DriverNSQ   = "nsq"
	DriverNATS  = "nats"
)

// NewSource builds the message source selected by cfg.Messaging.Driver.
// The returned close func releases any connection the source owns.
func NewSource(cfg *models.Config, redisClient *database.RedisClient) (ingest.Source, func(), error) {
	switch cfg.Messaging.Driver {
	case DriverRedis, "":
		return NewRedisSource(redisClient, cfg.Redis.Channel), func() {}, nil
	case DriverNSQ:
		return NewNSQSource(cfg.NSQ), func() {}, nil
	case DriverNATS:
		client, err := natspkg.NewClient(cfg.NATS.URL, cfg.App.Name)
		if err != nil {
			return nil, nil, err
		}
		return NewNATSSource(client, cfg.NATS.Subject), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown messaging driver %q", cfg.Messaging.Driver)
	}
}
