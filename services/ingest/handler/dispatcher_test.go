package handler

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/tripindex/internal/pkg/models"
	"github.com/piresc/tripindex/services/ingest/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const beginMessage = `{"event":"begin","tripId":"432","lat":37.79947,"lng":122.511635,"epoch":1392864673040}`

func dispatcherConfig(workers, queue int) *models.Config {
	return &models.Config{
		Ingest: models.IngestConfig{Workers: workers, QueueSize: queue, WriteTimeoutMs: 500},
	}
}

func TestDispatcher_IndexesValidMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIngestUC(ctrl)

	uc.EXPECT().IndexEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.TripEvent) error {
			assert.Equal(t, models.EventBegin, event.Kind)
			assert.Equal(t, "432", event.TripID)
			return nil
		})

	d, err := NewDispatcher(uc, dispatcherConfig(4, 16), nil)
	require.NoError(t, err)

	assert.True(t, d.HandleMessage([]byte(beginMessage)))
	require.NoError(t, d.Shutdown(context.Background()))

	processed, rejected, dropped := d.Stats()
	assert.Equal(t, int64(1), processed)
	assert.Zero(t, rejected)
	assert.Zero(t, dropped)
}

func TestDispatcher_RejectsInvalidMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIngestUC(ctrl)
	uc.EXPECT().IndexEvent(gomock.Any(), gomock.Any()).Times(0)

	d, err := NewDispatcher(uc, dispatcherConfig(1, 4), nil)
	require.NoError(t, err)

	assert.True(t, d.HandleMessage([]byte(`{"event":"end","tripId":"1","lat":1,"lng":1,"epoch":1}`)))
	assert.True(t, d.HandleMessage([]byte(`not json`)))
	require.NoError(t, d.Shutdown(context.Background()))

	processed, rejected, _ := d.Stats()
	assert.Zero(t, processed)
	assert.Equal(t, int64(2), rejected)
}

func TestDispatcher_DropsWhenSaturated(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIngestUC(ctrl)

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	uc.EXPECT().IndexEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *models.TripEvent) error {
			started <- struct{}{}
			<-release
			return nil
		}).Times(2)

	d, err := NewDispatcher(uc, dispatcherConfig(1, 1), nil)
	require.NoError(t, err)

	require.True(t, d.HandleMessage([]byte(beginMessage)))
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("worker did not pick up the first message")
	}

	assert.True(t, d.HandleMessage([]byte(beginMessage)))
	assert.False(t, d.HandleMessage([]byte(beginMessage)))

	close(release)
	require.NoError(t, d.Shutdown(context.Background()))

	processed, _, dropped := d.Stats()
	assert.Equal(t, int64(2), processed)
	assert.Equal(t, int64(1), dropped)
}

func TestDispatcher_DeclinesAfterShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIngestUC(ctrl)

	d, err := NewDispatcher(uc, dispatcherConfig(2, 2), nil)
	require.NoError(t, err)
	require.NoError(t, d.Shutdown(context.Background()))

	handle := d.Handler()
	assert.False(t, handle([]byte(beginMessage)))
}

func TestDispatcher_CopiesMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIngestUC(ctrl)
	uc.EXPECT().IndexEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.TripEvent) error {
			assert.Equal(t, "432", event.TripID)
			return nil
		})

	d, err := NewDispatcher(uc, dispatcherConfig(1, 1), nil)
	require.NoError(t, err)

	buf := []byte(beginMessage)
	require.True(t, d.HandleMessage(buf))
	for i := range buf {
		buf[i] = 'x'
	}

	require.NoError(t, d.Shutdown(context.Background()))
}

func TestNewDispatcher_InvalidPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIngestUC(ctrl)

	_, err := NewDispatcher(uc, dispatcherConfig(0, 1), nil)
	assert.Error(t, err)
}
