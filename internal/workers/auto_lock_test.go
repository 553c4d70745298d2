// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zero-vault/internal/logger"
	"github.com/MKhiriev/zero-vault/internal/session"
)

// fakeClock is a settable clock shared by the session and the job.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestAutoLock(t *testing.T, idle time.Duration) (*autoLock, *session.MasterPasswordSession, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)}
	s := session.New(session.WithClock(clock.Now))

	w := NewAutoLock(s, idle, logger.Nop())
	require.NotNil(t, w)
	a := w.(*autoLock)
	a.now = clock.Now
	return a, s, clock
}

func TestNewAutoLock_Disabled(t *testing.T) {
	assert.Nil(t, NewAutoLock(session.New(), 0, logger.Nop()))
	assert.Nil(t, NewAutoLock(session.New(), -time.Minute, logger.Nop()))
}

func TestNewAutoLock_Interval(t *testing.T) {
	a := NewAutoLock(session.New(), time.Hour, logger.Nop()).(*autoLock)
	assert.Equal(t, time.Second, a.interval)

	a = NewAutoLock(session.New(), 40*time.Millisecond, logger.Nop()).(*autoLock)
	assert.Equal(t, 10*time.Millisecond, a.interval)
}

func TestAutoLock_Check(t *testing.T) {
	a, s, clock := newTestAutoLock(t, 5*time.Minute)
	require.NoError(t, s.Set("correct-horse-battery"))

	clock.Advance(4 * time.Minute)
	a.check()
	assert.True(t, s.Unlocked(), "not idle long enough")

	_, _ = s.Get()
	clock.Advance(4 * time.Minute)
	a.check()
	assert.True(t, s.Unlocked(), "reading the password resets the idle timer")

	clock.Advance(time.Minute)
	a.check()
	assert.False(t, s.Unlocked())
}

type recordingLockable struct {
	cutoffs []time.Time
	idle    bool
}

func (l *recordingLockable) ClearIfIdle(cutoff time.Time) bool {
	l.cutoffs = append(l.cutoffs, cutoff)
	return l.idle
}

func TestAutoLock_CheckPassesIdleCutoff(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	l := &recordingLockable{}
	a := NewAutoLock(l, 5*time.Minute, logger.Nop()).(*autoLock)
	a.now = func() time.Time { return now }

	a.check()
	l.idle = true
	a.check()

	require.Len(t, l.cutoffs, 2)
	assert.True(t, l.cutoffs[0].Equal(now.Add(-5*time.Minute)))
}

func TestAutoLock_CheckLockedSession(t *testing.T) {
	a, s, clock := newTestAutoLock(t, time.Minute)

	clock.Advance(time.Hour)
	assert.NotPanics(t, a.check)
	assert.False(t, s.Unlocked())
}

func TestAutoLock_LocksInBackground(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Set("correct-horse-battery"))

	w := NewAutoLock(s, 20*time.Millisecond, logger.Nop())
	w.Start(context.Background())
	defer w.Stop()

	assert.Eventually(t, func() bool { return !s.Unlocked() }, time.Second, 5*time.Millisecond)
}

func TestAutoLock_StopAndRestart(t *testing.T) {
	w := NewAutoLock(session.New(), 10*time.Millisecond, logger.Nop())

	assert.NotPanics(t, w.Stop, "stop before start")

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	w.Start(ctx)
	cancel()
	w.Stop()
	w.Stop()
}
