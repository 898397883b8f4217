// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-drive-desk/internal/logger"
)

const defaultRefreshInterval = time.Minute

// Reloader refreshes a mirror from its source of truth.
type Reloader interface {
	Reload(ctx context.Context) error
}

type refreshJob struct {
	syncs  Reloader
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that calls syncs.Reload on a ticker, picking up
// sync pairs other clients added to the config store. The job is idle until
// Start is called.
func NewRefreshJob(syncs Reloader, logger *logger.Logger) RefreshJob {
	return &refreshJob{syncs: syncs, logger: logger}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that reloads every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
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
				if err := j.syncs.Reload(jobCtx); err != nil {
					j.logger.Warn().Err(err).Str("func", "refreshJob.Start").Msg("periodic reload failed")
				}
			}
		}
	}()
}

// Stop implements RefreshJob.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
