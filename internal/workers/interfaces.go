// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background jobs of the client and a Workers
// aggregate that starts and stops them together.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Start must not block; Stop blocks until the
// job's goroutine has exited and is safe to call on a job that never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Lockable is the part of the master password session the auto-lock job
// needs.
type Lockable interface {
	// ClearIfIdle locks the session unless it was used after cutoff and
	// reports whether it did.
	ClearIfIdle(cutoff time.Time) bool
}
