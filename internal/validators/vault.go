package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/zero-vault/internal/crypto"
	"github.com/MKhiriev/zero-vault/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldVaultID targets the server-assigned vault identifier.
	FieldVaultID = "vault_id"

	// FieldName targets the display name of a vault.
	FieldName = "name"

	// FieldEncryptedSecret targets the textual envelope.
	FieldEncryptedSecret = "encrypted_secret"

	// FieldSalt targets the hex salt of a vault.
	FieldSalt = "salt"

	// FieldSaltAbsent enforces that an update request does not carry a salt.
	FieldSaltAbsent = "salt_absent"

	// FieldAnyUpdate enforces that an update request sets at least one field.
	FieldAnyUpdate = "any_update"
)

// VaultValidator implements the Validator interface for vault records and
// the create/update requests that produce them. Both value and pointer forms
// are accepted.
type VaultValidator struct {
	codec   *crypto.EnvelopeCodec
	saltLen int
}

// NewVaultValidator builds a validator for the production crypto parameters.
func NewVaultValidator() Validator {
	params := crypto.DefaultParams()
	return &VaultValidator{
		codec:   crypto.NewEnvelopeCodec(params),
		saltLen: 2 * params.SaltLen,
	}
}

// Validate dispatches validation to the type-specific method.
//
// Supported types:
//   - models.Vault / *models.Vault
//   - models.CreateVaultRequest / *models.CreateVaultRequest
//   - models.UpdateVaultRequest / *models.UpdateVaultRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Vault:
		return v.validateVault(value, fields...)
	case *models.Vault:
		return v.validateVault(*value, fields...)

	case models.CreateVaultRequest:
		return v.validateCreateRequest(value, fields...)
	case *models.CreateVaultRequest:
		return v.validateCreateRequest(*value, fields...)

	case models.UpdateVaultRequest:
		return v.validateUpdateRequest(value, fields...)
	case *models.UpdateVaultRequest:
		return v.validateUpdateRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateVault checks a full record, e.g. one read back from storage.
// Default fields: vault id, name, envelope and salt.
func (v *VaultValidator) validateVault(vault models.Vault, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVaultID, FieldName, FieldEncryptedSecret, FieldSalt}
	}

	for _, f := range fields {
		switch f {
		case FieldVaultID:
			if strings.TrimSpace(vault.VaultID) == "" {
				return ErrEmptyVaultID
			}
		case FieldName:
			if err := v.checkName(vault.Name); err != nil {
				return err
			}
		case FieldEncryptedSecret:
			if err := v.checkEnvelope(vault.EncryptedSecret); err != nil {
				return err
			}
		case FieldSalt:
			if err := v.checkSalt(vault.Salt); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateRequest checks a new vault. Default fields: name, envelope
// and salt.
func (v *VaultValidator) validateCreateRequest(req models.CreateVaultRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEncryptedSecret, FieldSalt}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := v.checkName(req.Name); err != nil {
				return err
			}
		case FieldEncryptedSecret:
			if err := v.checkEnvelope(req.EncryptedSecret); err != nil {
				return err
			}
		case FieldSalt:
			if err := v.checkSalt(req.Salt); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateRequest checks a partial update. Default fields: salt
// absence, at least one change, then name and envelope when present.
func (v *VaultValidator) validateUpdateRequest(req models.UpdateVaultRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSaltAbsent, FieldAnyUpdate, FieldName, FieldEncryptedSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldSaltAbsent:
			if req.Salt != nil {
				return ErrSaltIsImmutable
			}
		case FieldAnyUpdate:
			if req.Name == nil && req.EncryptedSecret == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if req.Name == nil {
				continue
			}
			if err := v.checkName(*req.Name); err != nil {
				return err
			}
		case FieldEncryptedSecret:
			if req.EncryptedSecret == nil {
				continue
			}
			if err := v.checkEnvelope(*req.EncryptedSecret); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (v *VaultValidator) checkEnvelope(envelope string) error {
	if envelope == "" {
		return ErrEmptySecret
	}
	if err := v.codec.Validate(envelope); err != nil {
		return ErrInvalidEnvelope
	}
	return nil
}

// checkSalt accepts exactly saltLen lowercase hex characters, the form the
// client salt generator produces.
func (v *VaultValidator) checkSalt(salt string) error {
	if len(salt) != v.saltLen {
		return ErrInvalidSalt
	}
	for i := 0; i < len(salt); i++ {
		c := salt[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return ErrInvalidSalt
		}
	}
	return nil
}
