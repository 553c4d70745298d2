// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/zero-vault/internal/logger"
)

type autoLock struct {
	session  Lockable
	idle     time.Duration
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLock returns a job that clears session once it has been idle for
// longer than idle. The session is checked every idle/4, but at least once a
// second. A non-positive idle disables the job and NewAutoLock returns nil.
func NewAutoLock(session Lockable, idle time.Duration, log *logger.Logger) Worker {
	if idle <= 0 {
		return nil
	}
	interval := idle / 4
	if interval > time.Second {
		interval = time.Second
	}
	if interval <= 0 {
		interval = idle
	}
	return &autoLock{
		session:  session,
		idle:     idle,
		interval: interval,
		now:      time.Now,
		logger:   log,
	}
}

// Start implements Worker. A running job is stopped first.
func (a *autoLock) Start(ctx context.Context) {
	a.Stop()

	a.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()
		t := time.NewTicker(a.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				a.check()
			}
		}
	}()
}

// Stop implements Worker.
func (a *autoLock) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	a.wg.Wait()
}

func (a *autoLock) check() {
	if a.session.ClearIfIdle(a.now().Add(-a.idle)) {
		a.logger.Info().Str("func", "autoLock.check").Dur("idle", a.idle).Msg("session locked after inactivity")
	}
}
