package service

import (
	"errors"

	"github.com/MKhiriev/zero-vault/internal/crypto"
	"github.com/MKhiriev/zero-vault/internal/session"
	"github.com/MKhiriev/zero-vault/internal/store"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrEmptyName   = errors.New("name must not be empty")
	ErrEmptySecret = errors.New("secret must not be empty")
)

// Diagnostic codes added on top of [crypto.Code].
const (
	CodePasswordRequired = "password_required"
	CodeNotFound         = "not_found"
	CodeInvalidData      = "invalid_data"
)

// Code maps err to a stable diagnostic code for logs. It never looks at
// secret material, only at the error chain.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, session.ErrPasswordRequired):
		return CodePasswordRequired
	case errors.Is(err, store.ErrVaultNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidDataProvided):
		return CodeInvalidData
	default:
		return crypto.Code(err)
	}
}
