// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/zero-vault/internal/adapter"
	"github.com/MKhiriev/zero-vault/internal/crypto"
	"github.com/MKhiriev/zero-vault/internal/crypto/cryptotest"
	"github.com/MKhiriev/zero-vault/internal/logger"
	"github.com/MKhiriev/zero-vault/internal/mock"
	"github.com/MKhiriev/zero-vault/internal/session"
	"github.com/MKhiriev/zero-vault/internal/store"
	"github.com/MKhiriev/zero-vault/internal/validators"
	"github.com/MKhiriev/zero-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPassword = "correct horse battery staple"

type clientFixture struct {
	svc     ClientVaultService
	adapter *mock.MockVaultAdapter
	session *session.MasterPasswordSession
	engine  crypto.Engine
}

func newClientFixture(t *testing.T) *clientFixture {
	t.Helper()

	engine, err := crypto.NewEngine(cryptotest.NewSeededProvider(1), cryptotest.FastParams())
	require.NoError(t, err)

	sess := session.New()
	require.NoError(t, sess.Set(testPassword))

	serverAdapter := mock.NewMockVaultAdapter(gomock.NewController(t))
	return &clientFixture{
		svc:     NewClientVaultService(serverAdapter, engine, sess, logger.Nop()),
		adapter: serverAdapter,
		session: sess,
		engine:  engine,
	}
}

// echoCreate makes the adapter return the request as a stored vault.
func echoCreate(_ context.Context, req models.CreateVaultRequest) (models.Vault, error) {
	return models.Vault{
		VaultID:         testVaultID,
		Name:            req.Name,
		EncryptedSecret: req.EncryptedSecret,
		Salt:            req.Salt,
	}, nil
}

func TestClientVaultService_CreateThenReveal(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()

	var stored models.Vault
	f.adapter.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, req models.CreateVaultRequest) (models.Vault, error) {
			stored, _ = echoCreate(ctx, req)
			return stored, nil
		})

	created, err := f.svc.Create(ctx, " bank ", " 4111-1111 ")
	require.NoError(t, err)

	assert.Equal(t, "bank", created.Name)
	assert.Len(t, created.Salt, 32)
	assert.NotContains(t, created.EncryptedSecret, "4111")
	assert.NoError(t, validators.NewVaultValidator().Validate(ctx, created))

	f.adapter.EXPECT().Get(ctx, testVaultID).Return(stored, nil)

	plaintext, err := f.svc.Reveal(ctx, testVaultID)
	require.NoError(t, err)
	assert.Equal(t, "4111-1111", plaintext)
}

func TestClientVaultService_Create_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		vault   string
		secret  string
		lock    bool
		wantErr error
	}{
		{name: "locked session", vault: "bank", secret: "s", lock: true, wantErr: session.ErrPasswordRequired},
		{name: "blank name", vault: "   ", secret: "s", wantErr: ErrEmptyName},
		{name: "blank secret", vault: "bank", secret: "\t", wantErr: ErrEmptySecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newClientFixture(t)
			if tt.lock {
				f.session.Clear()
			}

			_, err := f.svc.Create(context.Background(), tt.vault, tt.secret)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientVaultService_Create_SaltFailure(t *testing.T) {
	engine, err := crypto.NewEngine(cryptotest.NewFailingRandomProvider(), cryptotest.FastParams())
	require.NoError(t, err)
	sess := session.New()
	require.NoError(t, sess.Set(testPassword))

	svc := NewClientVaultService(mock.NewMockVaultAdapter(gomock.NewController(t)), engine, sess, logger.Nop())

	_, err = svc.Create(context.Background(), "bank", "secret")

	require.ErrorIs(t, err, cryptotest.ErrRandomUnavailable)
}

func TestClientVaultService_Create_ServerConflict(t *testing.T) {
	f := newClientFixture(t)

	f.adapter.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.Vault{}, fmt.Errorf("%w: vault already exists", adapter.ErrConflict))

	_, err := f.svc.Create(context.Background(), "bank", "secret")

	require.ErrorIs(t, err, store.ErrVaultAlreadyExists)
}

func TestClientVaultService_Update_KeepsSalt(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(echoCreate)
	original, err := f.svc.Create(ctx, "bank", "old secret")
	require.NoError(t, err)

	newSecret := "new secret"
	f.adapter.EXPECT().Update(ctx, testVaultID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.UpdateVaultRequest) (models.Vault, error) {
			assert.Nil(t, req.Salt)
			require.NotNil(t, req.Name)
			require.NotNil(t, req.EncryptedSecret)
			assert.Equal(t, "bank", *req.Name)
			assert.NotEqual(t, original.EncryptedSecret, *req.EncryptedSecret)

			updated := original
			updated.EncryptedSecret = *req.EncryptedSecret
			return updated, nil
		})

	updated, err := f.svc.Update(ctx, original, nil, &newSecret)
	require.NoError(t, err)
	assert.Equal(t, original.Salt, updated.Salt)

	plaintext, err := f.svc.RevealRecord(updated)
	require.NoError(t, err)
	assert.Equal(t, newSecret, plaintext)
}

func TestClientVaultService_Update_WrongPasswordSendsNothing(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(echoCreate)
	original, err := f.svc.Create(ctx, "bank", "old secret")
	require.NoError(t, err)

	require.NoError(t, f.session.Set("correct horse battery stapl"))

	_, err = f.svc.Update(ctx, original, nil, stringPtr("new secret"))

	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.Equal(t, "wrong password or corrupted data", UserMessage(err))

	require.NoError(t, f.session.Set(testPassword))
	plaintext, err := f.svc.RevealRecord(original)
	require.NoError(t, err)
	assert.Equal(t, "old secret", plaintext)
}

func TestClientVaultService_Update_OpensBeforeSealing(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock.NewMockEngine(ctrl)
	sess := mock.NewMockPasswordSession(ctrl)
	serverAdapter := mock.NewMockVaultAdapter(ctrl)
	svc := NewClientVaultService(serverAdapter, engine, sess, logger.Nop())
	vault := models.Vault{VaultID: testVaultID, Name: "bank", EncryptedSecret: testEnvelope, Salt: testSalt}

	sess.EXPECT().Require().Return(testPassword, nil)
	gomock.InOrder(
		engine.EXPECT().Open(testEnvelope, testPassword, testSalt).Return("old", nil),
		engine.EXPECT().Seal("new", testPassword, testSalt).Return("sealed", nil),
		serverAdapter.EXPECT().Update(gomock.Any(), testVaultID, models.UpdateVaultRequest{
			Name:            stringPtr("bank"),
			EncryptedSecret: stringPtr("sealed"),
		}).Return(vault, nil),
	)

	_, err := svc.Update(context.Background(), vault, nil, stringPtr("new"))

	require.NoError(t, err)
}

func TestClientVaultService_Update_RenameReusesEnvelope(t *testing.T) {
	f := newClientFixture(t)
	vault := models.Vault{VaultID: testVaultID, Name: "bank", EncryptedSecret: testEnvelope, Salt: testSalt}
	name := "  savings "

	f.adapter.EXPECT().Update(gomock.Any(), testVaultID, models.UpdateVaultRequest{
		Name:            stringPtr("savings"),
		EncryptedSecret: stringPtr(testEnvelope),
	}).Return(vault, nil)

	_, err := f.svc.Update(context.Background(), vault, &name, nil)

	require.NoError(t, err)
}

func TestClientVaultService_Update_Rejects(t *testing.T) {
	vault := models.Vault{VaultID: testVaultID, Name: "bank", EncryptedSecret: testEnvelope, Salt: testSalt}

	t.Run("locked session", func(t *testing.T) {
		f := newClientFixture(t)
		f.session.Clear()

		_, err := f.svc.Update(context.Background(), vault, stringPtr("x"), nil)
		require.ErrorIs(t, err, session.ErrPasswordRequired)
	})

	t.Run("blank name", func(t *testing.T) {
		f := newClientFixture(t)

		_, err := f.svc.Update(context.Background(), vault, stringPtr(" "), nil)
		require.ErrorIs(t, err, ErrEmptyName)
		assert.ErrorIs(t, err, crypto.ErrInvalidInput)
	})

	t.Run("blank secret", func(t *testing.T) {
		f := newClientFixture(t)

		_, err := f.svc.Update(context.Background(), vault, nil, stringPtr(""))
		require.ErrorIs(t, err, ErrEmptySecret)
	})

	t.Run("server rejects", func(t *testing.T) {
		f := newClientFixture(t)
		f.adapter.EXPECT().Update(gomock.Any(), testVaultID, gomock.Any()).
			Return(models.Vault{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, "salt is immutable"))

		_, err := f.svc.Update(context.Background(), vault, stringPtr("x"), nil)
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestClientVaultService_Reveal_WrongPassword(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(echoCreate)
	vault, err := f.svc.Create(ctx, "bank", "secret")
	require.NoError(t, err)

	require.NoError(t, f.session.Set("not the right password"))

	_, err = f.svc.RevealRecord(vault)

	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.Equal(t, "wrong password or corrupted data", UserMessage(err))
}

func TestClientVaultService_Reveal_Errors(t *testing.T) {
	t.Run("locked session skips the server", func(t *testing.T) {
		f := newClientFixture(t)
		f.session.Clear()

		_, err := f.svc.Reveal(context.Background(), testVaultID)
		require.ErrorIs(t, err, session.ErrPasswordRequired)
	})

	t.Run("not found", func(t *testing.T) {
		f := newClientFixture(t)
		f.adapter.EXPECT().Get(gomock.Any(), "missing").
			Return(models.Vault{}, fmt.Errorf("%w: vault not found", adapter.ErrNotFound))

		_, err := f.svc.Reveal(context.Background(), "missing")
		require.ErrorIs(t, err, store.ErrVaultNotFound)
	})

	t.Run("malformed envelope", func(t *testing.T) {
		f := newClientFixture(t)
		vault := models.Vault{VaultID: testVaultID, EncryptedSecret: "not base64!", Salt: testSalt}

		_, err := f.svc.RevealRecord(vault)
		require.ErrorIs(t, err, crypto.ErrMalformedEnvelope)
	})
}

func TestClientVaultService_ListGetDelete(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()
	vault := models.Vault{VaultID: testVaultID, Name: "bank"}
	unavailable := fmt.Errorf("%w: bad gateway", adapter.ErrServerUnavailable)

	f.adapter.EXPECT().List(ctx).Return([]models.Vault{vault}, nil)
	f.adapter.EXPECT().Get(ctx, testVaultID).Return(vault, nil)
	f.adapter.EXPECT().Delete(ctx, testVaultID).Return(unavailable)

	list, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Vault{vault}, list)

	got, err := f.svc.Get(ctx, testVaultID)
	require.NoError(t, err)
	assert.Equal(t, vault, got)

	err = f.svc.Delete(ctx, testVaultID)
	require.ErrorIs(t, err, adapter.ErrServerUnavailable)
	assert.Equal(t, "vault server is unavailable", UserMessage(err))
}

func TestClientVaultService_SealFailureWithMockEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock.NewMockEngine(ctrl)
	sess := mock.NewMockPasswordSession(ctrl)
	svc := NewClientVaultService(mock.NewMockVaultAdapter(ctrl), engine, sess, logger.Nop())
	sealErr := errors.New("seal failed")

	sess.EXPECT().Require().Return(testPassword, nil)
	engine.EXPECT().NewSalt().Return(testSalt, nil)
	engine.EXPECT().Seal("secret", testPassword, testSalt).Return("", sealErr)

	_, err := svc.Create(context.Background(), "bank", "secret")

	require.ErrorIs(t, err, sealErr)
}

func stringPtr(s string) *string {
	return &s
}
