// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the vault server on behalf of the client.
//
// The server is an opaque store: the adapter only ever moves names, salts
// and envelopes. HTTP status codes are mapped to the sentinel errors in
// errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/zero-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// VaultAdapter is the client side of the vault REST API.
type VaultAdapter interface {
	// Create stores a new vault and returns it with its server-assigned id.
	Create(ctx context.Context, req models.CreateVaultRequest) (models.Vault, error)

	// Get returns one vault or an error wrapping [ErrNotFound].
	Get(ctx context.Context, vaultID string) (models.Vault, error)

	// List returns every vault visible to the client.
	List(ctx context.Context) ([]models.Vault, error)

	// Update replaces the fields set in req.
	Update(ctx context.Context, vaultID string, req models.UpdateVaultRequest) (models.Vault, error)

	// Delete removes the vault.
	Delete(ctx context.Context, vaultID string) error

	// ServerVersion returns the build information of the server.
	ServerVersion(ctx context.Context) (models.AppBuildInfo, error)
}
