package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyVaultID     = errors.New("vault id is required")
	ErrEmptyName        = errors.New("vault name is required")
	ErrEmptySecret      = errors.New("encrypted secret is required")
	ErrInvalidSalt      = errors.New("salt must be 32 lowercase hex characters")
	ErrInvalidEnvelope  = errors.New("encrypted secret is not a valid envelope")
	ErrSaltIsImmutable  = errors.New("salt cannot be changed")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
