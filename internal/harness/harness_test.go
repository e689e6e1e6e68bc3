package harness

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/tripindex/internal/pkg/database"
	"github.com/piresc/tripindex/internal/pkg/models"
	"github.com/piresc/tripindex/services/ingest/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

func TestGenerator_EventMix(t *testing.T) {
	gen := NewGenerator(42, DefaultCenter)

	counts := map[models.EventKind]int{}
	for i := 0; i < 20000; i++ {
		event := gen.Event()
		counts[event.Kind]++

		if event.Kind == models.EventEnd {
			require.NotNil(t, event.Fare)
			assert.GreaterOrEqual(t, *event.Fare, 0.0)
			assert.Less(t, *event.Fare, float64(maxFare))
		} else {
			assert.Nil(t, event.Fare)
		}
		assert.InDelta(t, DefaultCenter.Latitude, event.Latitude, jitter)
		assert.InDelta(t, DefaultCenter.Longitude, event.Longitude, jitter)
	}

	assert.InDelta(t, 200, counts[models.EventBegin], 80)
	assert.InDelta(t, 200, counts[models.EventEnd], 80)
	assert.Greater(t, counts[models.EventUpdate], 19000)
}

func TestGenerator_MessagesParse(t *testing.T) {
	gen := NewGenerator(7, DefaultCenter)

	for i := 0; i < 500; i++ {
		raw, err := gen.Next()
		require.NoError(t, err)

		event, err := parser.Parse(raw)
		require.NoError(t, err, string(raw))
		assert.NotEmpty(t, event.TripID)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, 1, 1)
	assert.Error(t, err)

	_, err = New(&recordingPublisher{}, 0, 1)
	assert.Error(t, err)

	_, err = New(&recordingPublisher{}, 1, 0)
	assert.Error(t, err)
}

func TestHarness_RunPublishesUntilCancelled(t *testing.T) {
	pub := &recordingPublisher{}
	h, err := New(pub, 3, 50)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, h.Run(ctx))

	stats := h.Stats()
	assert.Equal(t, int64(pub.count()), stats.Published)
	assert.Greater(t, stats.Published, int64(3))
	// 3 publishers at 50/s for 0.3s, plus one initial burst token each
	assert.LessOrEqual(t, stats.Published, int64(3*(15+1)+3))
}

func TestHarness_CountsFailures(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	h, err := New(pub, 1, 100)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, h.Run(ctx))

	stats := h.Stats()
	assert.Zero(t, stats.Published)
	assert.Greater(t, stats.Failed, int64(0))
}

func TestRedisPublisher(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	defer client.Close()

	ctx := context.Background()
	sub := client.Subscribe(ctx, "trip_updates")
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	pub := NewRedisPublisher(client, "trip_updates")
	require.NoError(t, pub.Publish(ctx, []byte(`{"event":"begin"}`)))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, `{"event":"begin"}`, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestNewPublisher_UnknownDriver(t *testing.T) {
	cfg := &models.Config{Messaging: models.MessagingConfig{Driver: "kafka"}}

	_, _, err := NewPublisher(cfg)
	assert.EqualError(t, err, `unknown messaging driver "kafka"`)
}
