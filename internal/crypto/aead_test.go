// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zero-vault/internal/crypto"
	"github.com/MKhiriev/zero-vault/internal/crypto/cryptotest"
)

// openErrorProvider reports an arbitrary error from Open.
type openErrorProvider struct {
	crypto.Provider
}

func (openErrorProvider) Open(_, _, _ []byte) ([]byte, error) {
	return nil, errors.New("backend exploded")
}

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func TestAEADCipher_RoundTrip(t *testing.T) {
	c := crypto.NewAEADCipher(crypto.NewPlatformProvider(), crypto.DefaultParams())
	plaintext := []byte("my-secret-token")

	nonce, ct, err := c.Encrypt(plaintext, testKey(1))
	require.NoError(t, err)
	assert.Len(t, nonce, 12)
	assert.Len(t, ct, len(plaintext)+16)

	got, err := c.Decrypt(nonce, ct, testKey(1))
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestAEADCipher_EmptyPlaintext(t *testing.T) {
	c := crypto.NewAEADCipher(crypto.NewPlatformProvider(), crypto.DefaultParams())

	nonce, ct, err := c.Encrypt(nil, testKey(1))
	require.NoError(t, err)
	assert.Len(t, ct, 16)

	got, err := c.Decrypt(nonce, ct, testKey(1))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAEADCipher_FreshNoncePerCall(t *testing.T) {
	c := crypto.NewAEADCipher(crypto.NewPlatformProvider(), crypto.DefaultParams())

	n1, ct1, err := c.Encrypt([]byte("same"), testKey(1))
	require.NoError(t, err)
	n2, ct2, err := c.Encrypt([]byte("same"), testKey(1))
	require.NoError(t, err)

	assert.NotEqual(t, n1, n2)
	assert.NotEqual(t, ct1, ct2)
}

func TestAEADCipher_WrongKey(t *testing.T) {
	c := crypto.NewAEADCipher(crypto.NewPlatformProvider(), crypto.DefaultParams())

	nonce, ct, err := c.Encrypt([]byte("my-secret-token"), testKey(1))
	require.NoError(t, err)

	got, err := c.Decrypt(nonce, ct, testKey(2))
	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.Nil(t, got)
}

func TestAEADCipher_TamperedCiphertext(t *testing.T) {
	c := crypto.NewAEADCipher(crypto.NewPlatformProvider(), crypto.DefaultParams())

	nonce, ct, err := c.Encrypt([]byte("my-secret-token"), testKey(1))
	require.NoError(t, err)

	for i := range ct {
		tampered := bytes.Clone(ct)
		tampered[i] ^= 0x01

		got, err := c.Decrypt(nonce, tampered, testKey(1))
		require.ErrorIs(t, err, crypto.ErrDecryptionFailed, "byte %d", i)
		require.Nil(t, got)
	}

	tamperedNonce := bytes.Clone(nonce)
	tamperedNonce[0] ^= 0x80
	_, err = c.Decrypt(tamperedNonce, ct, testKey(1))
	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestAEADCipher_InvalidInput(t *testing.T) {
	c := crypto.NewAEADCipher(crypto.NewPlatformProvider(), crypto.DefaultParams())

	_, _, err := c.Encrypt([]byte("x"), make([]byte, 16))
	assert.ErrorIs(t, err, crypto.ErrInvalidInput, "short key on encrypt")

	_, err = c.Decrypt(make([]byte, 12), make([]byte, 32), make([]byte, 31))
	assert.ErrorIs(t, err, crypto.ErrInvalidInput, "short key on decrypt")

	_, err = c.Decrypt(make([]byte, 8), make([]byte, 32), testKey(1))
	assert.ErrorIs(t, err, crypto.ErrInvalidInput, "short nonce")
}

func TestAEADCipher_CiphertextShorterThanTag(t *testing.T) {
	c := crypto.NewAEADCipher(crypto.NewPlatformProvider(), crypto.DefaultParams())

	_, err := c.Decrypt(make([]byte, 12), make([]byte, 15), testKey(1))
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestAEADCipher_ProviderOpenErrorIsDecryptionFailure(t *testing.T) {
	c := crypto.NewAEADCipher(openErrorProvider{Provider: crypto.NewPlatformProvider()}, crypto.DefaultParams())

	_, err := c.Decrypt(make([]byte, 12), make([]byte, 32), testKey(1))
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.NotContains(t, err.Error(), "exploded")
}

func TestAEADCipher_NonceFailure(t *testing.T) {
	c := crypto.NewAEADCipher(cryptotest.NewFailingRandomProvider(), crypto.DefaultParams())

	nonce, ct, err := c.Encrypt([]byte("x"), testKey(1))
	require.ErrorIs(t, err, cryptotest.ErrRandomUnavailable)
	assert.Nil(t, nonce)
	assert.Nil(t, ct)
}
