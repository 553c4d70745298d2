// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
)

// engine is the default [Engine]: salt generation, key derivation, AES-GCM
// and the envelope codec wired together.
type engine struct {
	salts *SaltGenerator
	kdf   *KeyDerivation
	aead  *AEADCipher
	codec *EnvelopeCodec
}

// NewEngine validates params and builds an [Engine] on top of provider.
func NewEngine(provider Provider, params Params) (Engine, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: nil provider", ErrInvalidInput)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("crypto params: %w", err)
	}

	return &engine{
		salts: NewSaltGenerator(provider, params),
		kdf:   NewKeyDerivation(provider, params),
		aead:  NewAEADCipher(provider, params),
		codec: NewEnvelopeCodec(params),
	}, nil
}

// NewDefaultEngine returns an [Engine] with [DefaultParams] on the platform
// provider.
func NewDefaultEngine() Engine {
	e, err := NewEngine(NewPlatformProvider(), DefaultParams())
	if err != nil {
		// DefaultParams always validates.
		panic(err)
	}
	return e
}

// NewSalt implements [Engine].
func (e *engine) NewSalt() (string, error) {
	return e.salts.Generate()
}

// Seal implements [Engine].
func (e *engine) Seal(plaintext, password, salt string) (string, error) {
	key, err := e.kdf.Derive(password, salt)
	if err != nil {
		return "", err
	}
	defer clear(key)

	nonce, ciphertext, err := e.aead.Encrypt([]byte(plaintext), key)
	if err != nil {
		return "", err
	}
	return e.codec.Encode(nonce, ciphertext), nil
}

// Open implements [Engine]. The envelope is decoded before the key is
// derived so a structurally broken envelope is reported as such without
// paying for the derivation.
func (e *engine) Open(envelope, password, salt string) (string, error) {
	nonce, ciphertext, err := e.codec.Decode(envelope)
	if err != nil {
		return "", err
	}

	key, err := e.kdf.Derive(password, salt)
	if err != nil {
		return "", err
	}
	defer clear(key)

	plaintext, err := e.aead.Decrypt(nonce, ciphertext, key)
	if err != nil {
		return "", err
	}
	defer clear(plaintext)

	return string(plaintext), nil
}
