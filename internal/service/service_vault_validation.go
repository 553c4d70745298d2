package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zero-vault/internal/validators"
	"github.com/MKhiriev/zero-vault/models"
)

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService // returns a decorated VaultService applying additional behavior
}

// VaultValidationService rejects malformed requests before they reach the
// wrapped service. Validation failures wrap both [ErrInvalidDataProvided]
// and the specific validators error.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *VaultValidationService) Create(ctx context.Context, req models.CreateVaultRequest) (models.Vault, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Vault{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, req)
}

func (v *VaultValidationService) Get(ctx context.Context, vaultID string) (models.Vault, error) {
	if vaultID == "" {
		return models.Vault{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyVaultID)
	}

	return v.inner.Get(ctx, vaultID)
}

func (v *VaultValidationService) List(ctx context.Context) ([]models.Vault, error) {
	return v.inner.List(ctx)
}

func (v *VaultValidationService) Update(ctx context.Context, vaultID string, req models.UpdateVaultRequest) (models.Vault, error) {
	if vaultID == "" {
		return models.Vault{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyVaultID)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Vault{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, vaultID, req)
}

func (v *VaultValidationService) Delete(ctx context.Context, vaultID string) error {
	if vaultID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyVaultID)
	}

	return v.inner.Delete(ctx, vaultID)
}

func (v *VaultValidationService) Wrap(wrapped VaultService) VaultService {
	v.inner = wrapped
	return v
}
