// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// AEADCipher encrypts and authenticates vault secrets with AES-GCM.
type AEADCipher struct {
	provider Provider
	params   Params
}

// NewAEADCipher returns an [AEADCipher] using provider and params.
func NewAEADCipher(provider Provider, params Params) *AEADCipher {
	return &AEADCipher{provider: provider, params: params}
}

// Encrypt seals plaintext under key with a nonce drawn fresh for this call.
// The returned ciphertext carries the GCM tag at its end. Encrypting the same
// plaintext twice yields different nonces and therefore different
// ciphertexts.
func (c *AEADCipher) Encrypt(plaintext, key []byte) (nonce, ciphertext []byte, err error) {
	if err = c.checkKey(key); err != nil {
		return nil, nil, err
	}

	nonce, err = c.provider.RandomBytes(c.params.NonceLen)
	if err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext, err = c.provider.Seal(key, nonce, plaintext)
	if err != nil {
		return nil, nil, fmt.Errorf("seal: %w", err)
	}
	return nonce, ciphertext, nil
}

// Decrypt authenticates and decrypts ciphertext. Every authentication
// failure, whatever the provider reports, surfaces as [ErrDecryptionFailed]
// so a wrong key cannot be told apart from a tampered ciphertext.
func (c *AEADCipher) Decrypt(nonce, ciphertext, key []byte) ([]byte, error) {
	if err := c.checkKey(key); err != nil {
		return nil, err
	}
	if len(nonce) != c.params.NonceLen {
		return nil, fmt.Errorf("%w: nonce must be %d bytes", ErrInvalidInput, c.params.NonceLen)
	}
	if len(ciphertext) < c.params.TagLen {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := c.provider.Open(key, nonce, ciphertext)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func (c *AEADCipher) checkKey(key []byte) error {
	if len(key) != c.params.KeyLen {
		return fmt.Errorf("%w: key must be %d bytes", ErrInvalidInput, c.params.KeyLen)
	}
	return nil
}
