package harness

import (
	"context"
	"fmt"

	"github.com/piresc/tripindex/internal/pkg/database"
	"github.com/piresc/tripindex/internal/pkg/models"
	natspkg "github.com/piresc/tripindex/internal/pkg/nats"
	nsqpkg "github.com/piresc/tripindex/internal/pkg/nsq"
)

// Publisher delivers an encoded trip event to the delivery channel
type Publisher interface {
	Publish(ctx context.Context, payload []byte) error
}

type redisPublisher struct {
	client  *database.RedisClient
	channel string
}

func (p *redisPublisher) Publish(ctx context.Context, payload []byte) error {
	return p.client.Publish(ctx, p.channel, payload)
}

type nsqPublisher struct {
	producer *nsqpkg.Producer
	topic    string
}

func (p *nsqPublisher) Publish(_ context.Context, payload []byte) error {
	return p.producer.Publish(p.topic, payload)
}

type natsPublisher struct {
	client  *natspkg.Client
	subject string
}

func (p *natsPublisher) Publish(_ context.Context, payload []byte) error {
	return p.client.Publish(p.subject, payload)
}

// NewRedisPublisher publishes to a Redis pub/sub channel
func NewRedisPublisher(client *database.RedisClient, channel string) Publisher {
	return &redisPublisher{client: client, channel: channel}
}

// NewPublisher connects to the driver selected in cfg. The returned func
// releases the connection.
func NewPublisher(cfg *models.Config) (Publisher, func(), error) {
	switch cfg.Messaging.Driver {
	case "redis", "":
		client, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisPublisher(client, cfg.Redis.Channel), func() { _ = client.Close() }, nil
	case "nsq":
		producer, err := nsqpkg.NewProducer(cfg.NSQ.NSQDAddress)
		if err != nil {
			return nil, nil, err
		}
		return &nsqPublisher{producer: producer, topic: cfg.NSQ.Topic}, producer.Stop, nil
	case "nats":
		client, err := natspkg.NewClient(cfg.NATS.URL, cfg.App.Name+"-harness")
		if err != nil {
			return nil, nil, err
		}
		return &natsPublisher{client: client, subject: cfg.NATS.Subject}, client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown messaging driver %q", cfg.Messaging.Driver)
	}
}
