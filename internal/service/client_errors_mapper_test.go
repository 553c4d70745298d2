package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/zero-vault/internal/adapter"
	"github.com/MKhiriev/zero-vault/internal/app"
	"github.com/MKhiriev/zero-vault/internal/crypto"
	"github.com/MKhiriev/zero-vault/internal/session"
	"github.com/MKhiriev/zero-vault/internal/store"
	"github.com/MKhiriev/zero-vault/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	other := errors.New("connection refused")

	tests := []struct {
		name  string
		in    error
		wants []error
	}{
		{
			name:  "known bad request",
			in:    fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidSalt),
			wants: []error{ErrInvalidDataProvided, validators.ErrInvalidSalt},
		},
		{
			name:  "unknown bad request",
			in:    fmt.Errorf("%w: %s", adapter.ErrBadRequest, "something odd"),
			wants: []error{ErrInvalidDataProvided, adapter.ErrBadRequest},
		},
		{
			name:  "not found",
			in:    fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgVaultNotFound),
			wants: []error{store.ErrVaultNotFound},
		},
		{
			name:  "conflict",
			in:    fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgVaultAlreadyExists),
			wants: []error{store.ErrVaultAlreadyExists},
		},
		{
			name:  "passthrough",
			in:    other,
			wants: []error{other},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			for _, want := range tt.wants {
				assert.ErrorIs(t, got, want)
			}
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}

func TestExtractBody(t *testing.T) {
	err := fmt.Errorf("%w: %s", adapter.ErrBadRequest, " salt is immutable ")

	assert.Equal(t, "salt is immutable", extractBody(err, adapter.ErrBadRequest))
	assert.Empty(t, extractBody(errors.New("plain"), adapter.ErrBadRequest))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "locked", err: fmt.Errorf("reveal: %w", session.ErrPasswordRequired), want: app.MsgPasswordRequired},
		{name: "wrong password", err: crypto.ErrDecryptionFailed, want: app.MsgWrongPasswordOrCorrupted},
		{name: "damaged envelope", err: crypto.ErrMalformedEnvelope, want: app.MsgWrongPasswordOrCorrupted},
		{name: "not found", err: store.ErrVaultNotFound, want: app.MsgVaultNotFound},
		{name: "server down", err: adapter.ErrServerUnavailable, want: app.MsgServerUnavailable},
		{
			name: "connection refused",
			err:  fmt.Errorf("list vaults request: %w: %w", adapter.ErrServerUnavailable, errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")),
			want: app.MsgServerUnavailable,
		},
		{name: "empty name", err: fmt.Errorf("%w: %w", crypto.ErrInvalidInput, ErrEmptyName), want: ErrEmptyName.Error()},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestCode(t *testing.T) {
	assert.Empty(t, Code(nil))
	assert.Equal(t, CodePasswordRequired, Code(session.ErrPasswordRequired))
	assert.Equal(t, CodeNotFound, Code(fmt.Errorf("get: %w", store.ErrVaultNotFound)))
	assert.Equal(t, CodeInvalidData, Code(fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyName)))
	assert.Equal(t, crypto.Code(crypto.ErrDecryptionFailed), Code(crypto.ErrDecryptionFailed))
}
