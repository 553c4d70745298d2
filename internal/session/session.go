// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the master password for the lifetime of an unlocked
// client session.
package session

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/zero-vault/internal/crypto"
)

// MasterPasswordSession keeps the master password sealed in a memguard
// enclave. The enclave is published through an atomic pointer: readers never
// lock, and Set/Clear swap the whole value.
//
// The zero value is a locked session ready for use.
type MasterPasswordSession struct {
	enclave  atomic.Pointer[memguard.Enclave]
	lastUsed atomic.Int64

	now func() time.Time
}

// Option configures a [MasterPasswordSession].
type Option func(*MasterPasswordSession)

// WithClock replaces time.Now for activity tracking.
func WithClock(now func() time.Time) Option {
	return func(s *MasterPasswordSession) {
		s.now = now
	}
}

// New returns a locked session.
func New(opts ...Option) *MasterPasswordSession {
	s := &MasterPasswordSession{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set stores password, replacing any previous one. The empty password is
// rejected with [crypto.ErrInvalidInput].
func (s *MasterPasswordSession) Set(password string) error {
	if password == "" {
		return fmt.Errorf("%w: empty master password", crypto.ErrInvalidInput)
	}

	// Activity is recorded before the enclave is published so that
	// ClearIfIdle never sees a new password with an old timestamp.
	// NewEnclave wipes its argument.
	buf := []byte(password)
	s.touch()
	s.enclave.Store(memguard.NewEnclave(buf))
	return nil
}

// Get returns the stored password and whether one is present.
func (s *MasterPasswordSession) Get() (string, bool) {
	e := s.enclave.Load()
	if e == nil {
		return "", false
	}

	lb, err := e.Open()
	if err != nil {
		return "", false
	}
	password := string(lb.Bytes())
	lb.Destroy()

	s.touch()
	return password, true
}

// Require is Get for callers that cannot proceed without a password.
func (s *MasterPasswordSession) Require() (string, error) {
	password, ok := s.Get()
	if !ok {
		return "", ErrPasswordRequired
	}
	return password, nil
}

// Clear forgets the password. Clearing a locked session is a no-op.
func (s *MasterPasswordSession) Clear() {
	s.enclave.Store(nil)
}

// ClearIfIdle forgets the password if there was no activity after cutoff.
// A password set after the check is left alone: only the enclave that was
// found idle is swapped out. It reports whether the session was locked.
func (s *MasterPasswordSession) ClearIfIdle(cutoff time.Time) bool {
	e := s.enclave.Load()
	if e == nil {
		return false
	}
	if s.LastActivity().After(cutoff) {
		return false
	}
	return s.enclave.CompareAndSwap(e, nil)
}

// Unlocked reports whether a password is present. It does not count as
// activity.
func (s *MasterPasswordSession) Unlocked() bool {
	return s.enclave.Load() != nil
}

// LastActivity returns the time of the last Set or successful Get, or the
// zero time if there was none.
func (s *MasterPasswordSession) LastActivity() time.Time {
	ns := s.lastUsed.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

func (s *MasterPasswordSession) touch() {
	s.lastUsed.Store(s.clock().UnixNano())
}

func (s *MasterPasswordSession) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
