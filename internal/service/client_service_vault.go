// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/zero-vault/internal/adapter"
	"github.com/MKhiriev/zero-vault/internal/crypto"
	"github.com/MKhiriev/zero-vault/internal/logger"
	"github.com/MKhiriev/zero-vault/models"
)

type clientVaultService struct {
	adapter adapter.VaultAdapter
	engine  crypto.Engine
	session PasswordSession

	logger *logger.Logger
}

func NewClientVaultService(serverAdapter adapter.VaultAdapter, engine crypto.Engine, session PasswordSession, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{
		adapter: serverAdapter,
		engine:  engine,
		session: session,
		logger:  logger,
	}
}

func (c *clientVaultService) Create(ctx context.Context, name, secret string) (models.Vault, error) {
	password, err := c.session.Require()
	if err != nil {
		return models.Vault{}, fmt.Errorf("create vault: %w", err)
	}

	name, secret = strings.TrimSpace(name), strings.TrimSpace(secret)
	if err = checkNameAndSecret(&name, &secret); err != nil {
		return models.Vault{}, fmt.Errorf("create vault: %w", err)
	}

	salt, err := c.engine.NewSalt()
	if err != nil {
		return models.Vault{}, fmt.Errorf("generate salt: %w", err)
	}

	envelope, err := c.engine.Seal(secret, password, salt)
	if err != nil {
		c.logFailure("clientVaultService.Create", "", err)
		return models.Vault{}, fmt.Errorf("seal secret: %w", err)
	}

	created, err := c.adapter.Create(ctx, models.CreateVaultRequest{
		Name:            name,
		EncryptedSecret: envelope,
		Salt:            salt,
	})
	if err != nil {
		return models.Vault{}, fmt.Errorf("store created vault: %w", mapAdapterError(err))
	}

	return created, nil
}

func (c *clientVaultService) Get(ctx context.Context, vaultID string) (models.Vault, error) {
	vault, err := c.adapter.Get(ctx, vaultID)
	if err != nil {
		return models.Vault{}, fmt.Errorf("get vault %s: %w", vaultID, mapAdapterError(err))
	}
	return vault, nil
}

func (c *clientVaultService) List(ctx context.Context) ([]models.Vault, error) {
	vaults, err := c.adapter.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vaults: %w", mapAdapterError(err))
	}
	return vaults, nil
}

// Update always sends both name and envelope. The salt is never sent, and a
// new secret is sealed under vault.Salt so the record keeps one salt for its
// whole life.
//
// Before a new secret is sealed the current envelope must open with the
// session password. A mistyped password fails with crypto.ErrDecryptionFailed
// and nothing is sent.
func (c *clientVaultService) Update(ctx context.Context, vault models.Vault, name, secret *string) (models.Vault, error) {
	password, err := c.session.Require()
	if err != nil {
		return models.Vault{}, fmt.Errorf("update vault: %w", err)
	}

	newName := vault.Name
	if name != nil {
		newName = strings.TrimSpace(*name)
		if err = checkNameAndSecret(&newName, nil); err != nil {
			return models.Vault{}, fmt.Errorf("update vault: %w", err)
		}
	}

	envelope := vault.EncryptedSecret
	if secret != nil {
		plaintext := strings.TrimSpace(*secret)
		if err = checkNameAndSecret(nil, &plaintext); err != nil {
			return models.Vault{}, fmt.Errorf("update vault: %w", err)
		}

		if _, err = c.open(vault, password); err != nil {
			return models.Vault{}, fmt.Errorf("update vault: %w", err)
		}

		envelope, err = c.engine.Seal(plaintext, password, vault.Salt)
		if err != nil {
			c.logFailure("clientVaultService.Update", vault.VaultID, err)
			return models.Vault{}, fmt.Errorf("seal secret: %w", err)
		}
	}

	updated, err := c.adapter.Update(ctx, vault.VaultID, models.UpdateVaultRequest{
		Name:            &newName,
		EncryptedSecret: &envelope,
	})
	if err != nil {
		return models.Vault{}, fmt.Errorf("store updated vault: %w", mapAdapterError(err))
	}

	return updated, nil
}

func (c *clientVaultService) Reveal(ctx context.Context, vaultID string) (string, error) {
	password, err := c.session.Require()
	if err != nil {
		return "", fmt.Errorf("reveal vault: %w", err)
	}

	vault, err := c.adapter.Get(ctx, vaultID)
	if err != nil {
		return "", fmt.Errorf("get vault %s: %w", vaultID, mapAdapterError(err))
	}

	return c.open(vault, password)
}

func (c *clientVaultService) RevealRecord(vault models.Vault) (string, error) {
	password, err := c.session.Require()
	if err != nil {
		return "", fmt.Errorf("reveal vault: %w", err)
	}

	return c.open(vault, password)
}

func (c *clientVaultService) Delete(ctx context.Context, vaultID string) error {
	if err := c.adapter.Delete(ctx, vaultID); err != nil {
		return fmt.Errorf("delete vault %s: %w", vaultID, mapAdapterError(err))
	}
	return nil
}

func (c *clientVaultService) open(vault models.Vault, password string) (string, error) {
	plaintext, err := c.engine.Open(vault.EncryptedSecret, password, vault.Salt)
	if err != nil {
		c.logFailure("clientVaultService.open", vault.VaultID, err)
		return "", fmt.Errorf("open vault %s: %w", vault.VaultID, err)
	}
	return plaintext, nil
}

// logFailure records which operation failed on which vault and the error
// code. The error text itself is not logged.
func (c *clientVaultService) logFailure(fn, vaultID string, err error) {
	c.logger.Warn().
		Str("func", fn).
		Str("vault_id", vaultID).
		Str("code", Code(err)).
		Msg("vault crypto operation failed")
}

// checkNameAndSecret rejects blank values among the non-nil arguments.
func checkNameAndSecret(name, secret *string) error {
	if name != nil && *name == "" {
		return fmt.Errorf("%w: %w", crypto.ErrInvalidInput, ErrEmptyName)
	}
	if secret != nil && *secret == "" {
		return fmt.Errorf("%w: %w", crypto.ErrInvalidInput, ErrEmptySecret)
	}
	return nil
}
