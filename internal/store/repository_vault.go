// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/zero-vault/internal/logger"
	"github.com/MKhiriev/zero-vault/models"
)

// vaultRepository is the SQL implementation of [VaultRepository]. It works
// unchanged on PostgreSQL and SQLite; the dialect only changes placeholders.
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository returns a [VaultRepository] over db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{DB: db, logger: logger}
}

func (r *vaultRepository) Create(ctx context.Context, vault models.Vault) (models.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertVaultQuery(vault)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Create").Msg("failed to build query")
		return models.Vault{}, err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return models.Vault{}, fmt.Errorf("%w: %s", ErrVaultAlreadyExists, vault.VaultID)
		}
		log.Err(err).
			Str("func", "*vaultRepository.Create").
			Str("vault_id", vault.VaultID).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to insert vault")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return vault, nil
}

func (r *vaultRepository) Get(ctx context.Context, vaultID string) (models.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectVaultQuery(vaultID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Get").Msg("failed to build query")
		return models.Vault{}, err
	}

	vault, err := scanVault(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vault{}, ErrVaultNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Get").Str("vault_id", vaultID).Msg("failed to select vault")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return vault, nil
}

func (r *vaultRepository) List(ctx context.Context) ([]models.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListVaultsQuery()
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.List").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.List").Msg("failed to select vaults")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	vaults := make([]models.Vault, 0, 16)
	for rows.Next() {
		vault, scanErr := scanVault(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*vaultRepository.List").Msg("failed to scan vault row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		vaults = append(vaults, vault)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*vaultRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vaults, nil
}

// Update runs the UPDATE and the read-back in one transaction so the
// returned record is the one this call wrote.
func (r *vaultRepository) Update(ctx context.Context, vaultID string, update models.VaultUpdate) (models.Vault, error) {
	log := logger.FromContext(ctx)

	updateQuery, updateArgs, err := r.buildUpdateVaultQuery(vaultID, update)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Update").Msg("failed to build query")
		return models.Vault{}, err
	}
	selectQuery, selectArgs, err := r.buildSelectVaultQuery(vaultID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Update").Msg("failed to build query")
		return models.Vault{}, err
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Update").Msg("failed to begin transaction")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.Update").
			Str("vault_id", vaultID).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to update vault")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Vault{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Vault{}, ErrVaultNotFound
	}

	updated, err := scanVault(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Update").Str("vault_id", vaultID).Msg("failed to read back vault")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*vaultRepository.Update").Msg("failed to commit transaction")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return updated, nil
}

func (r *vaultRepository) Delete(ctx context.Context, vaultID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildDeleteVaultQuery(vaultID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Delete").Msg("failed to build query")
		return err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Delete").Str("vault_id", vaultID).Msg("failed to delete vault")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrVaultNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVault(row rowScanner) (models.Vault, error) {
	var v models.Vault
	err := row.Scan(&v.VaultID, &v.Name, &v.EncryptedSecret, &v.Salt, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return models.Vault{}, err
	}
	v.CreatedAt = v.CreatedAt.UTC()
	v.UpdatedAt = v.UpdatedAt.UTC()
	return v, nil
}
