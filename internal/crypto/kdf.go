// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"
)

// KeyDerivation turns a master password and a vault salt into an AES key.
// It keeps no state between calls: every Derive runs the full iteration
// count, even for a vault whose key was derived a moment ago.
type KeyDerivation struct {
	provider Provider
	params   Params
}

// NewKeyDerivation returns a [KeyDerivation] using provider and params.
func NewKeyDerivation(provider Provider, params Params) *KeyDerivation {
	return &KeyDerivation{provider: provider, params: params}
}

// Derive returns a params.KeyLen-byte key for password and salt.
//
// The salt must be hex of exactly params.SaltLen bytes in either salt
// encoding. With [SaltAsText] the hex characters themselves are the PBKDF2
// salt, with [SaltAsBinary] the decoded bytes are. Fails with
// [ErrInvalidInput] for an empty password or a malformed salt.
//
// The caller owns the returned key and should clear it once done.
func (k *KeyDerivation) Derive(password, salt string) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", ErrInvalidInput)
	}

	saltBytes, err := k.saltBytes(salt)
	if err != nil {
		return nil, err
	}

	pw := []byte(password)
	defer clear(pw)

	key, err := k.provider.DeriveKey(pw, saltBytes, k.params.Iterations, k.params.KeyLen)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	if len(key) != k.params.KeyLen {
		clear(key)
		return nil, fmt.Errorf("derive key: got %d bytes, want %d", len(key), k.params.KeyLen)
	}
	return key, nil
}

func (k *KeyDerivation) saltBytes(salt string) ([]byte, error) {
	// Only the canonical lowercase form is accepted, as on the server.
	raw, err := hex.DecodeString(salt)
	if err != nil || len(raw) != k.params.SaltLen || hex.EncodeToString(raw) != salt {
		return nil, fmt.Errorf("%w: salt must be %d lowercase hex-encoded bytes", ErrInvalidInput, k.params.SaltLen)
	}

	if k.params.SaltEncoding == SaltAsBinary {
		return raw, nil
	}
	return []byte(salt), nil
}
