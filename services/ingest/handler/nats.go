package handler

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/piresc/tripindex/internal/pkg/logger"
	natspkg "github.com/piresc/tripindex/internal/pkg/nats"
	"github.com/piresc/tripindex/services/ingest"
)

// NATSSource receives trip messages from a NATS subject
type NATSSource struct {
	client  *natspkg.Client
	subject string
	sub     *nats.Subscription
}

// NewNATSSource creates a source for subject on an established connection
func NewNATSSource(client *natspkg.Client, subject string) *NATSSource {
	return &NATSSource{
		client:  client,
		subject: subject,
	}
}

// Start subscribes handle to the subject
func (s *NATSSource) Start(_ context.Context, handle ingest.MessageHandler) error {
	sub, err := s.client.Subscribe(s.subject, func(data []byte) {
		handle(data)
	})
	if err != nil {
		return err
	}
	s.sub = sub

	logger.Info("Subscribed to NATS subject", logger.String("subject", s.subject))
	return nil
}

// Stop drains the subscription
func (s *NATSSource) Stop() {
	if s.sub == nil {
		return
	}
	if err := s.sub.Drain(); err != nil {
		logger.Warn("Failed to drain NATS subscription",
			logger.String("subject", s.subject),
			logger.Err(err))
	}
}
