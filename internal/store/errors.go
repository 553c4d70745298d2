// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrVaultNotFound is returned when no vault has the requested id.
	ErrVaultNotFound = errors.New("vault was not found")

	// ErrVaultAlreadyExists is returned when an insert collides with an
	// existing vault id.
	ErrVaultAlreadyExists = errors.New("vault already exists")

	// ErrUnsupportedDSN is returned when the DSN selects no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level errors wrapped around driver failures.
var (
	ErrBuildingSQLQuery      = errors.New("error building sql query")
	ErrExecutingQuery        = errors.New("error executing sql query")
	ErrExecutingStatement    = errors.New("failed to execute statement")
	ErrBeginningTransaction  = errors.New("failed to begin transaction")
	ErrCommittingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow           = errors.New("failed to scan vault row")
	ErrScanningRows          = errors.New("failed to scan vault rows")
)
