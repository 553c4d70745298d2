package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/zero-vault/internal/adapter"
	"github.com/MKhiriev/zero-vault/internal/app"
	"github.com/MKhiriev/zero-vault/internal/crypto"
	"github.com/MKhiriev/zero-vault/internal/session"
	"github.com/MKhiriev/zero-vault/internal/store"
	"github.com/MKhiriev/zero-vault/internal/validators"
)

// badRequestErrors maps server error bodies back to validation errors.
var badRequestErrors = map[string]error{
	app.MsgEmptyVaultName:       validators.ErrEmptyName,
	app.MsgEmptyEncryptedSecret: validators.ErrEmptySecret,
	app.MsgInvalidSalt:          validators.ErrInvalidSalt,
	app.MsgInvalidEnvelope:      validators.ErrInvalidEnvelope,
	app.MsgSaltIsImmutable:      validators.ErrSaltIsImmutable,
	app.MsgNothingToUpdate:      validators.ErrNoFieldsToUpdate,
}

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if known, ok := badRequestErrors[extractBody(err, adapter.ErrBadRequest)]; ok {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, known)
		}
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrVaultNotFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrVaultAlreadyExists
	}

	return err
}

// extractBody extracts the body from a message of the form "<sentinel>: <body>".
func extractBody(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "

	if i := strings.Index(msg, prefix); i >= 0 {
		return strings.TrimSpace(msg[i+len(prefix):])
	}
	return ""
}

// UserMessage turns an error from the client services into the text shown
// to the user. A wrong password and a damaged envelope read the same.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, session.ErrPasswordRequired):
		return app.MsgPasswordRequired
	case errors.Is(err, crypto.ErrDecryptionFailed), errors.Is(err, crypto.ErrMalformedEnvelope):
		return app.MsgWrongPasswordOrCorrupted
	case errors.Is(err, store.ErrVaultNotFound):
		return app.MsgVaultNotFound
	case errors.Is(err, adapter.ErrServerUnavailable):
		return app.MsgServerUnavailable
	case errors.Is(err, ErrEmptyName):
		return ErrEmptyName.Error()
	case errors.Is(err, ErrEmptySecret):
		return ErrEmptySecret.Error()
	default:
		return err.Error()
	}
}
