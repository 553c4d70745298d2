package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/zero-vault/internal/logger"
	"github.com/MKhiriev/zero-vault/internal/store"
	"github.com/MKhiriev/zero-vault/models"
)

type vaultService struct {
	vaultRepository store.VaultRepository
	ids             IDGenerator
	now             func() time.Time

	logger *logger.Logger
}

func NewVaultService(vaultRepository store.VaultRepository, ids IDGenerator, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		ids:             ids,
		now:             time.Now,
		logger:          logger,
	}
}

func (v *vaultService) Create(ctx context.Context, req models.CreateVaultRequest) (models.Vault, error) {
	now := v.now().UTC()
	vault := models.Vault{
		VaultID:         v.ids.Generate(),
		Name:            strings.TrimSpace(req.Name),
		EncryptedSecret: req.EncryptedSecret,
		Salt:            req.Salt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := v.vaultRepository.Create(ctx, vault)
	if err != nil {
		return models.Vault{}, fmt.Errorf("create vault: %w", err)
	}

	v.logger.Info().
		Str("func", "vaultService.Create").
		Str("vault_id", created.VaultID).
		Msg("vault created")
	return created, nil
}

func (v *vaultService) Get(ctx context.Context, vaultID string) (models.Vault, error) {
	vault, err := v.vaultRepository.Get(ctx, vaultID)
	if err != nil {
		return models.Vault{}, fmt.Errorf("get vault: %w", err)
	}
	return vault, nil
}

func (v *vaultService) List(ctx context.Context) ([]models.Vault, error) {
	vaults, err := v.vaultRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vaults: %w", err)
	}
	return vaults, nil
}

// Update never touches the salt: a vault keeps the salt it was created
// with for as long as it exists.
func (v *vaultService) Update(ctx context.Context, vaultID string, req models.UpdateVaultRequest) (models.Vault, error) {
	update := models.VaultUpdate{
		EncryptedSecret: req.EncryptedSecret,
		UpdatedAt:       v.now().UTC(),
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		update.Name = &name
	}

	updated, err := v.vaultRepository.Update(ctx, vaultID, update)
	if err != nil {
		return models.Vault{}, fmt.Errorf("update vault: %w", err)
	}

	v.logger.Info().
		Str("func", "vaultService.Update").
		Str("vault_id", vaultID).
		Bool("secret_replaced", req.EncryptedSecret != nil).
		Msg("vault updated")
	return updated, nil
}

func (v *vaultService) Delete(ctx context.Context, vaultID string) error {
	if err := v.vaultRepository.Delete(ctx, vaultID); err != nil {
		return fmt.Errorf("delete vault: %w", err)
	}

	v.logger.Info().
		Str("func", "vaultService.Delete").
		Str("vault_id", vaultID).
		Msg("vault deleted")
	return nil
}
