package service

import (
	"github.com/MKhiriev/zero-vault/internal/logger"
	"github.com/MKhiriev/zero-vault/internal/store"
	"github.com/MKhiriev/zero-vault/internal/utils"
	"github.com/MKhiriev/zero-vault/models"
)

type Services struct {
	VaultService   VaultService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	vaults := NewVaultService(storages.VaultRepository, utils.NewVaultIDGenerator(), logger)

	return &Services{
		VaultService:   NewVaultValidationService().Wrap(vaults),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
