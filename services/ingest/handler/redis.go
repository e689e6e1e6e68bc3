package handler

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/tripindex/internal/pkg/database"
	"github.com/piresc/tripindex/internal/pkg/logger"
	"github.com/piresc/tripindex/services/ingest"
)

// RedisSource receives trip messages from a Redis pub/sub channel
type RedisSource struct {
	redisClient *database.RedisClient
	channel     string

	pubsub *redis.PubSub
	done   chan struct{}
	once   sync.Once
}

// NewRedisSource creates a source subscribed to channel
func NewRedisSource(redisClient *database.RedisClient, channel string) *RedisSource {
	return &RedisSource{
		redisClient: redisClient,
		channel:     channel,
		done:        make(chan struct{}),
	}
}

// Start subscribes to the channel and forwards every payload to handle
func (s *RedisSource) Start(ctx context.Context, handle ingest.MessageHandler) error {
	pubsub := s.redisClient.Subscribe(ctx, s.channel)

	// wait for the subscription to be confirmed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("failed to subscribe to redis channel %s: %w", s.channel, err)
	}
	s.pubsub = pubsub

	logger.Info("Subscribed to Redis channel", logger.String("channel", s.channel))

	messages := pubsub.Channel()
	go func() {
		defer close(s.done)
		for msg := range messages {
			handle([]byte(msg.Payload))
		}
	}()

	return nil
}

// Stop unsubscribes and waits for the forwarding loop to exit
func (s *RedisSource) Stop() {
	s.once.Do(func() {
		if s.pubsub == nil {
			return
		}
		if err := s.pubsub.Close(); err != nil {
			logger.Warn("Failed to close Redis subscription", logger.Err(err))
		}
		<-s.done
	})
}
