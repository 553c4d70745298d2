// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cryptotest provides deterministic stand-ins for the crypto
// provider. They exist for logic tests only (reproducible salts and nonces);
// nothing here may be used to assess cryptographic strength.
package cryptotest

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/MKhiriev/zero-vault/internal/crypto"
)

// ErrRandomUnavailable is returned by [FailingRandomProvider].
var ErrRandomUnavailable = errors.New("random source unavailable")

// FastParams returns [crypto.DefaultParams] with a low iteration count so
// tests that derive many keys stay quick.
func FastParams() crypto.Params {
	p := crypto.DefaultParams()
	p.Iterations = 1_000
	return p
}

// SeededProvider replaces the random source of the platform provider with a
// ChaCha8 stream seeded by the caller. Key derivation and AES-GCM still run
// on the platform implementation.
type SeededProvider struct {
	crypto.Provider

	mu  sync.Mutex
	rng *rand.ChaCha8
}

// NewSeededProvider returns a [SeededProvider] whose byte stream is fully
// determined by seed.
func NewSeededProvider(seed byte) *SeededProvider {
	var s [32]byte
	for i := range s {
		s[i] = seed
	}
	return &SeededProvider{
		Provider: crypto.NewPlatformProvider(),
		rng:      rand.NewChaCha8(s),
	}
}

// RandomBytes implements [crypto.Provider].
func (p *SeededProvider) RandomBytes(n int) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf := make([]byte, n)
	_, _ = p.rng.Read(buf)
	return buf, nil
}

// FailingRandomProvider behaves like the platform provider except that its
// random source always fails.
type FailingRandomProvider struct {
	crypto.Provider
}

// NewFailingRandomProvider returns a [FailingRandomProvider].
func NewFailingRandomProvider() *FailingRandomProvider {
	return &FailingRandomProvider{Provider: crypto.NewPlatformProvider()}
}

// RandomBytes implements [crypto.Provider].
func (p *FailingRandomProvider) RandomBytes(int) ([]byte, error) {
	return nil, ErrRandomUnavailable
}
