// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side, zero-knowledge envelope
// encryption used for vault secrets.
//
// The server only ever stores two strings per vault: a hex salt and an
// envelope. Everything needed to turn them back into plaintext (the master
// password and the key derived from it) stays inside the client process.
//
// Scheme:
//
//	salt     = hex(random 16 bytes)                     (SaltGenerator)
//	key      = PBKDF2-HMAC-SHA256(password, salt, 100k) (KeyDerivation)
//	ct ‖ tag = AES-256-GCM(key, nonce, plaintext)       (AEADCipher)
//	envelope = base64(nonce ‖ ct ‖ tag)                 (EnvelopeCodec)
//
// The derived key is recomputed for every call and zeroed afterwards; it is
// never cached.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Provider is the platform cryptographic binding. The production
// implementation ([NewPlatformProvider]) backs onto crypto/rand, crypto/aes,
// crypto/cipher and golang.org/x/crypto/pbkdf2. Test implementations may
// replace the randomness source for deterministic logic tests; they must
// never be used to judge cryptographic strength.
type Provider interface {
	// RandomBytes returns n bytes from a cryptographically secure source.
	RandomBytes(n int) ([]byte, error)

	// DeriveKey runs PBKDF2-HMAC-SHA-256 over password and salt.
	DeriveKey(password, salt []byte, iterations, keyLen int) ([]byte, error)

	// Seal encrypts plaintext with AES-GCM and returns ciphertext ‖ tag.
	Seal(key, nonce, plaintext []byte) ([]byte, error)

	// Open authenticates and decrypts ciphertext ‖ tag. Any failure must
	// return an error and no plaintext.
	Open(key, nonce, ciphertext []byte) ([]byte, error)
}

// Engine seals and opens vault secrets under a master password. It is the
// single entry point used by the vault service; implementations hold no
// per-call state and are safe for concurrent use.
type Engine interface {
	// NewSalt generates the salt for a new vault.
	NewSalt() (string, error)

	// Seal derives a key from password and salt, encrypts plaintext under a
	// fresh nonce and returns the textual envelope.
	Seal(plaintext, password, salt string) (string, error)

	// Open decodes envelope, derives the key from password and salt and
	// returns the plaintext. It fails with [ErrMalformedEnvelope] or
	// [ErrDecryptionFailed]; no partial plaintext is ever returned.
	Open(envelope, password, salt string) (string, error)
}
