package service

import (
	"context"

	"github.com/MKhiriev/zero-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// PasswordSession hands out the current master password.
// *session.MasterPasswordSession satisfies it.
type PasswordSession interface {
	// Require returns the password or an error wrapping
	// session.ErrPasswordRequired.
	Require() (string, error)
}

// ClientVaultService defines the client-side contract for managing vaults.
// Secrets are sealed before they leave the process and opened only on
// explicit reveal; the master password comes from the injected
// [PasswordSession] on every call.
type ClientVaultService interface {
	// Create seals secret under a fresh salt and stores the vault.
	Create(ctx context.Context, name, secret string) (models.Vault, error)

	// Get returns the stored record; the secret stays sealed.
	Get(ctx context.Context, vaultID string) (models.Vault, error)

	// List returns every stored record; secrets stay sealed.
	List(ctx context.Context) ([]models.Vault, error)

	// Update renames vault and/or replaces its secret. A nil name keeps the
	// current one; a nil secret reuses the stored envelope unchanged. A new
	// secret is sealed under the vault's existing salt.
	Update(ctx context.Context, vault models.Vault, name, secret *string) (models.Vault, error)

	// Reveal fetches the vault and opens its secret.
	Reveal(ctx context.Context, vaultID string) (string, error)

	// RevealRecord opens the secret of an already fetched record.
	RevealRecord(vault models.Vault) (string, error)

	// Delete removes the vault together with its salt and envelope.
	Delete(ctx context.Context, vaultID string) error
}

// ServerInfoService reports the build of the vault server the client talks
// to. adapter.VaultAdapter satisfies it.
type ServerInfoService interface {
	ServerVersion(ctx context.Context) (models.AppBuildInfo, error)
}
