package ingest

import (
	"context"
)

// MessageHandler receives one raw trip message. It returns false when the
// message was declined.
type MessageHandler func(raw []byte) bool

// Source delivers raw trip messages from a messaging system
type Source interface {
	// Start subscribes and feeds messages to handle until Stop is called.
	Start(ctx context.Context, handle MessageHandler) error
	Stop()
}
