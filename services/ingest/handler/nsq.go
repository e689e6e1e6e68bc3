package handler

import (
	"context"
	"fmt"

	"github.com/piresc/tripindex/internal/pkg/logger"
	"github.com/piresc/tripindex/internal/pkg/models"
	nsqpkg "github.com/piresc/tripindex/internal/pkg/nsq"
	"github.com/piresc/tripindex/services/ingest"
)

// NSQSource receives trip messages from an NSQ topic
type NSQSource struct {
	cfg      models.NSQConfig
	consumer *nsqpkg.Consumer
}

// NewNSQSource creates a source for the configured topic and channel
func NewNSQSource(cfg models.NSQConfig) *NSQSource {
	return &NSQSource{cfg: cfg}
}

// Start connects to lookupd when configured, otherwise straight to nsqd.
// Declined messages are finished, not requeued.
func (s *NSQSource) Start(_ context.Context, handle ingest.MessageHandler) error {
	consumer, err := nsqpkg.NewConsumer(s.cfg.Topic, s.cfg.Channel, func(body []byte) error {
		handle(body)
		return nil
	})
	if err != nil {
		return err
	}

	if len(s.cfg.LookupdAddresses) > 0 {
		err = consumer.ConnectToLookupd(s.cfg.LookupdAddresses)
	} else {
		err = consumer.ConnectToNSQD(s.cfg.NSQDAddress)
	}
	if err != nil {
		consumer.Stop()
		return fmt.Errorf("failed to start NSQ source: %w", err)
	}
	s.consumer = consumer

	logger.Info("Consuming NSQ topic",
		logger.String("topic", s.cfg.Topic),
		logger.String("channel", s.cfg.Channel))
	return nil
}

// Stop stops the consumer
func (s *NSQSource) Stop() {
	if s.consumer != nil {
		s.consumer.Stop()
	}
}
