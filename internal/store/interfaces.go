// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists vault records. The server stores them opaquely:
// nothing in this package can decrypt a secret.
package store

import (
	"context"

	"github.com/MKhiriev/zero-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository is the persistence layer of the vault server.
type VaultRepository interface {
	// Create inserts vault as given, including its id and timestamps.
	Create(ctx context.Context, vault models.Vault) (models.Vault, error)

	// Get returns the vault with id vaultID or [ErrVaultNotFound].
	Get(ctx context.Context, vaultID string) (models.Vault, error)

	// List returns every vault, oldest first.
	List(ctx context.Context) ([]models.Vault, error)

	// Update applies the non-nil fields of update and returns the stored
	// record. The salt column is never touched.
	Update(ctx context.Context, vaultID string, update models.VaultUpdate) (models.Vault, error)

	// Delete removes the vault, salt and envelope together.
	Delete(ctx context.Context, vaultID string) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
