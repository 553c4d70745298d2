// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/zero-vault/internal/logger"

// Storages groups the repositories of the server.
type Storages struct {
	VaultRepository VaultRepository
}

// NewStorages builds every repository over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		VaultRepository: NewVaultRepository(db, log),
	}
}
