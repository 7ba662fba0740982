package service

import (
	"context"
	"sync"
	"time"

	"dogfetch/internal/logger"
	"dogfetch/internal/store"
)

type clientPurgeJob struct {
	localStore store.LocalStorage
	log        *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientPurgeJob creates a purge job that sweeps expired entries out of
// local storage on a ticker. The job is idle until Start is called.
func NewClientPurgeJob(localStore store.LocalStorage, log *logger.Logger) ClientPurgeJob {
	return &clientPurgeJob{localStore: localStore, log: log}
}

// Start implements ClientPurgeJob. It stops any previously running job, then
// launches a background goroutine sweeping every interval. If interval is zero
// or negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientPurgeJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				dropped, err := j.localStore.PurgeExpired()
				if err != nil {
					j.log.Warn().Err(err).Msg("storage purge")
					continue
				}
				if dropped > 0 {
					j.log.Debug().Int("dropped", dropped).Msg("purged expired entries")
				}
			}
		}
	}()
}

// Stop implements ClientPurgeJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientPurgeJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
