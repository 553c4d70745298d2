// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// platformProvider is the production [Provider].
type platformProvider struct {
	random io.Reader
}

// NewPlatformProvider returns a [Provider] backed by the operating system
// CSPRNG and the Go standard cryptographic packages.
func NewPlatformProvider() Provider {
	return &platformProvider{random: rand.Reader}
}

// RandomBytes implements [Provider].
func (p *platformProvider) RandomBytes(n int) ([]byte, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: random length must be positive", ErrInvalidInput)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(p.random, buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return buf, nil
}

// DeriveKey implements [Provider].
func (p *platformProvider) DeriveKey(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if len(password) == 0 || len(salt) == 0 || iterations < 1 || keyLen < 1 {
		return nil, fmt.Errorf("%w: pbkdf2 parameters", ErrInvalidInput)
	}
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New), nil
}

// Seal implements [Provider].
func (p *platformProvider) Seal(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: nonce must be %d bytes", ErrInvalidInput, gcm.NonceSize())
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open implements [Provider]. The cipher package error is not wrapped: it
// would add nothing a caller may act on.
func (p *platformProvider) Open(key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: nonce must be %d bytes", ErrInvalidInput, gcm.NonceSize())
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %v", ErrInvalidInput, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
