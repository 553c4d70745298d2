// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"
)

// SaltGenerator produces per-vault salts.
type SaltGenerator struct {
	provider Provider
	length   int
}

// NewSaltGenerator returns a generator drawing params.SaltLen bytes from
// provider per salt.
func NewSaltGenerator(provider Provider, params Params) *SaltGenerator {
	return &SaltGenerator{provider: provider, length: params.SaltLen}
}

// Generate returns a fresh salt as lowercase hex (32 characters with the
// default parameters). It is called exactly once per vault, at creation.
func (g *SaltGenerator) Generate() (string, error) {
	raw, err := g.provider.RandomBytes(g.length)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
