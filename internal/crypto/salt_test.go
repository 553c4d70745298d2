// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zero-vault/internal/crypto"
	"github.com/MKhiriev/zero-vault/internal/crypto/cryptotest"
)

func TestSaltGenerator_LengthAndAlphabet(t *testing.T) {
	gen := crypto.NewSaltGenerator(crypto.NewPlatformProvider(), crypto.DefaultParams())

	salt, err := gen.Generate()
	require.NoError(t, err)

	assert.Len(t, salt, 32)
	assert.Equal(t, strings.ToLower(salt), salt)

	raw, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, raw, 16)
}

func TestSaltGenerator_Randomness(t *testing.T) {
	gen := crypto.NewSaltGenerator(crypto.NewPlatformProvider(), crypto.DefaultParams())

	seen := make(map[string]struct{})
	for range 64 {
		salt, err := gen.Generate()
		require.NoError(t, err)
		_, dup := seen[salt]
		require.False(t, dup, "salt %s generated twice", salt)
		seen[salt] = struct{}{}
	}
}

func TestSaltGenerator_SeededProviderIsReproducible(t *testing.T) {
	a := crypto.NewSaltGenerator(cryptotest.NewSeededProvider(7), crypto.DefaultParams())
	b := crypto.NewSaltGenerator(cryptotest.NewSeededProvider(7), crypto.DefaultParams())

	sa, err := a.Generate()
	require.NoError(t, err)
	sb, err := b.Generate()
	require.NoError(t, err)

	assert.Equal(t, sa, sb)
}

func TestSaltGenerator_RandomFailure(t *testing.T) {
	gen := crypto.NewSaltGenerator(cryptotest.NewFailingRandomProvider(), crypto.DefaultParams())

	salt, err := gen.Generate()
	require.Error(t, err)
	assert.ErrorIs(t, err, cryptotest.ErrRandomUnavailable)
	assert.Empty(t, salt)
}
