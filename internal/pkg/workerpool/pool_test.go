package workerpool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidSizes(t *testing.T) {
	_, err := New("test", 0, 4)
	assert.Error(t, err)

	_, err = New("test", 4, 0)
	assert.Error(t, err)
}

func TestPool_RunsAllTasks(t *testing.T) {
	p, err := New("test", 4, 16)
	require.NoError(t, err)

	var count int64
	for i := 0; i < 16; i++ {
		require.True(t, p.TrySubmit(func() { atomic.AddInt64(&count, 1) }))
	}

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, int64(16), atomic.LoadInt64(&count))
	assert.Equal(t, 4, p.Workers())
}

func TestPool_RejectsWhenQueueFull(t *testing.T) {
	p, err := New("test", 1, 1)
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	require.True(t, p.TrySubmit(func() {
		close(started)
		<-release
	}))
	<-started

	var ran int64
	assert.True(t, p.TrySubmit(func() { atomic.AddInt64(&ran, 1) }))
	assert.Equal(t, 1, p.Pending())
	assert.False(t, p.TrySubmit(func() { atomic.AddInt64(&ran, 1) }))

	close(release)
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, int64(1), atomic.LoadInt64(&ran))
}

func TestPool_RejectsAfterShutdown(t *testing.T) {
	p, err := New("test", 2, 2)
	require.NoError(t, err)

	require.NoError(t, p.Shutdown(context.Background()))

	assert.False(t, p.TrySubmit(func() {}))
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestPool_ShutdownDrainsQueue(t *testing.T) {
	p, err := New("test", 1, 8)
	require.NoError(t, err)

	var mu sync.Mutex
	var order []int
	for i := 0; i < 8; i++ {
		i := i
		require.True(t, p.TrySubmit(func() {
			time.Sleep(time.Millisecond)
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, order)
}

func TestPool_ShutdownTimeout(t *testing.T) {
	p, err := New("test", 1, 1)
	require.NoError(t, err)

	release := make(chan struct{})
	defer close(release)
	require.True(t, p.TrySubmit(func() { <-release }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err = p.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPool_RecoversFromPanic(t *testing.T) {
	p, err := New("test", 1, 4)
	require.NoError(t, err)

	var ran int64
	require.True(t, p.TrySubmit(func() { panic("bad message") }))
	require.True(t, p.TrySubmit(func() { atomic.AddInt64(&ran, 1) }))

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, int64(1), atomic.LoadInt64(&ran))
}
