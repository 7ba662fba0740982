package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogfetch/internal/logger"
)

// spyStorage counts PurgeExpired calls; the rest of LocalStorage is inert.
type spyStorage struct {
	purges atomic.Int64
	err    error
}

func (s *spyStorage) Set(string, any, time.Duration) error { return nil }
func (s *spyStorage) Get(string, any) (bool, error)        { return false, nil }
func (s *spyStorage) Remove(string) error                  { return nil }

func (s *spyStorage) PurgeExpired() (int, error) {
	s.purges.Add(1)
	return 0, s.err
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientPurgeJob_Start_SweepsOnTicks(t *testing.T) {
	spy := &spyStorage{}
	job := NewClientPurgeJob(spy, logger.Nop())
	require.NotNil(t, job)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.purges.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several sweeps, got %d", got)
}

func TestClientPurgeJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyStorage{}
	job := NewClientPurgeJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	after := spy.purges.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.purges.Load(), "no sweeps after Stop")
}

func TestClientPurgeJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientPurgeJob(&spyStorage{}, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientPurgeJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewClientPurgeJob(&spyStorage{}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientPurgeJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyStorage{}
	job := NewClientPurgeJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 falls back to 5 minutes, so 20ms sees no sweeps.
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.purges.Load())
}

func TestClientPurgeJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spyStorage{}
	job := NewClientPurgeJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	before := spy.purges.Load()
	assert.Greater(t, before, int64(0))

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.purges.Load(), before, "restarted job keeps sweeping")
}

func TestClientPurgeJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyStorage{}
	job := NewClientPurgeJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestClientPurgeJob_PurgeError_DoesNotStopJob(t *testing.T) {
	spy := &spyStorage{err: assert.AnError}
	job := NewClientPurgeJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.purges.Load()
	assert.GreaterOrEqual(t, got, int64(3), "sweeps continue despite errors: %d", got)
}
