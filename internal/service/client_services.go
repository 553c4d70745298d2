package service

import (
	"github.com/MKhiriev/zero-vault/internal/adapter"
	"github.com/MKhiriev/zero-vault/internal/crypto"
	"github.com/MKhiriev/zero-vault/internal/logger"
)

type ClientServices struct {
	VaultService ClientVaultService
	ServerInfo   ServerInfoService
}

func NewClientServices(serverAdapter adapter.VaultAdapter, engine crypto.Engine, session PasswordSession, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		VaultService: NewClientVaultService(serverAdapter, engine, session, logger),
		ServerInfo:   serverAdapter,
	}
}
