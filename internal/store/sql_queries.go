// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zero-vault/models"
)

const vaultsTable = "vaults"

var vaultColumns = []string{
	"vault_id",
	"name",
	"encrypted_secret",
	"salt",
	"created_at",
	"updated_at",
}

func (db *DB) buildInsertVaultQuery(vault models.Vault) (string, []any, error) {
	query, args, err := db.builder.
		Insert(vaultsTable).
		Columns(vaultColumns...).
		Values(vault.VaultID, vault.Name, vault.EncryptedSecret, vault.Salt, vault.CreatedAt, vault.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildSelectVaultQuery(vaultID string) (string, []any, error) {
	query, args, err := db.builder.
		Select(vaultColumns...).
		From(vaultsTable).
		Where(sq.Eq{"vault_id": vaultID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildListVaultsQuery() (string, []any, error) {
	query, args, err := db.builder.
		Select(vaultColumns...).
		From(vaultsTable).
		OrderBy("created_at ASC", "vault_id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateVaultQuery sets only the provided fields. updated_at is always
// set, so an update with nothing else still touches the record.
func (db *DB) buildUpdateVaultQuery(vaultID string, update models.VaultUpdate) (string, []any, error) {
	b := db.builder.
		Update(vaultsTable).
		Set("updated_at", update.UpdatedAt)

	if update.Name != nil {
		b = b.Set("name", *update.Name)
	}
	if update.EncryptedSecret != nil {
		b = b.Set("encrypted_secret", *update.EncryptedSecret)
	}

	query, args, err := b.
		Where(sq.Eq{"vault_id": vaultID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildDeleteVaultQuery(vaultID string) (string, []any, error) {
	query, args, err := db.builder.
		Delete(vaultsTable).
		Where(sq.Eq{"vault_id": vaultID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
