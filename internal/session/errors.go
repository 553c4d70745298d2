// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrPasswordRequired is returned when an operation needs the master
	// password and the session holds none.
	ErrPasswordRequired = errors.New("master password required")

	// ErrPasswordTooShort is returned by [CheckPolicy] for a new master
	// password below [MinPasswordLength] characters.
	ErrPasswordTooShort = errors.New("master password is too short")
)
