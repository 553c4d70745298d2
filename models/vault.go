// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types shared by the zero-vault server,
// client and storage layers.
package models

import "time"

// Vault is a stored secret. The server only ever sees the envelope and the
// salt; the plaintext never leaves the client.
type Vault struct {
	// VaultID is assigned by the server on creation.
	VaultID string `json:"vaultId"`

	// Name is the plaintext label chosen by the user.
	Name string `json:"name"`

	// EncryptedSecret is base64(nonce[12] ‖ ciphertext ‖ tag[16]).
	EncryptedSecret string `json:"encryptedSecret"`

	// Salt is 32 lowercase hex characters. It is fixed at creation and
	// reused for every later re-encryption of the secret.
	Salt string `json:"salt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateVaultRequest is the body of POST /api/vaults.
type CreateVaultRequest struct {
	Name            string `json:"name"`
	EncryptedSecret string `json:"encryptedSecret"`
	Salt            string `json:"salt"`
}

// UpdateVaultRequest is the body of PUT /api/vaults/{vaultID}. Nil fields
// are left unchanged. Salt exists only so that the server can reject
// attempts to change it.
type UpdateVaultRequest struct {
	Name            *string `json:"name,omitempty"`
	EncryptedSecret *string `json:"encryptedSecret,omitempty"`
	Salt            *string `json:"salt,omitempty"`
}

// VaultUpdate is a partial update as applied by the repository.
type VaultUpdate struct {
	Name            *string
	EncryptedSecret *string
	UpdatedAt       time.Time
}

// VaultList is the body of GET /api/vaults.
type VaultList struct {
	Vaults []Vault `json:"vaults"`
}
