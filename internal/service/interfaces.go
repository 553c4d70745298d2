package service

import (
	"context"

	"github.com/MKhiriev/zero-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService is the server side of the vault store. It never sees a
// plaintext secret or a key; it checks record shape and persists it.
type VaultService interface {
	Create(ctx context.Context, req models.CreateVaultRequest) (models.Vault, error)
	Get(ctx context.Context, vaultID string) (models.Vault, error)
	List(ctx context.Context) ([]models.Vault, error)
	Update(ctx context.Context, vaultID string, req models.UpdateVaultRequest) (models.Vault, error)
	Delete(ctx context.Context, vaultID string) error
}

// AppInfoService exposes the build information of the running server.
type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

// IDGenerator issues new vault ids.
type IDGenerator interface {
	Generate() string
}
