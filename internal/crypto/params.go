// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strings"
)

// SaltEncoding selects how the textual salt stored next to a vault is fed to
// PBKDF2.
type SaltEncoding int

const (
	// SaltAsText feeds the 32 ASCII hex characters themselves to PBKDF2.
	// Every envelope produced by the web client was derived this way, so it
	// is the default.
	SaltAsText SaltEncoding = iota

	// SaltAsBinary decodes the hex salt back to its 16 raw bytes first.
	// Envelopes sealed in this mode cannot be opened in SaltAsText mode and
	// vice versa.
	SaltAsBinary
)

// String implements [fmt.Stringer].
func (e SaltEncoding) String() string {
	switch e {
	case SaltAsText:
		return "text"
	case SaltAsBinary:
		return "binary"
	default:
		return fmt.Sprintf("SaltEncoding(%d)", int(e))
	}
}

// ParseSaltEncoding parses the configuration value of a [SaltEncoding].
// An empty string selects [SaltAsText].
func ParseSaltEncoding(s string) (SaltEncoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return SaltAsText, nil
	case "binary":
		return SaltAsBinary, nil
	default:
		return SaltAsText, fmt.Errorf("unknown salt encoding %q", s)
	}
}

// Params collects the algorithm parameters shared by the key derivation and
// AEAD components. It is a plain value: components copy it on construction
// and never modify it afterwards.
type Params struct {
	// Iterations is the PBKDF2-HMAC-SHA-256 iteration count.
	Iterations int

	// KeyLen is the derived key length in bytes (32 for AES-256).
	KeyLen int

	// SaltLen is the number of random salt bytes (hex-encoded to 2*SaltLen
	// characters).
	SaltLen int

	// NonceLen is the AES-GCM nonce length in bytes.
	NonceLen int

	// TagLen is the AES-GCM authentication tag length in bytes.
	TagLen int

	// SaltEncoding selects how the salt text reaches PBKDF2.
	SaltEncoding SaltEncoding
}

// DefaultParams returns the production parameters: PBKDF2-HMAC-SHA-256 with
// 100 000 iterations, a 256-bit key, a 16-byte salt, a 12-byte nonce, a
// 16-byte tag and the text salt encoding.
func DefaultParams() Params {
	return Params{
		Iterations:   100_000,
		KeyLen:       32, // AES-256
		SaltLen:      16,
		NonceLen:     12,
		TagLen:       16,
		SaltEncoding: SaltAsText,
	}
}

// Validate reports whether p can be used to build the crypto components.
func (p Params) Validate() error {
	if p.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be positive", ErrInvalidInput)
	}
	switch p.KeyLen {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: key length %d is not an AES key size", ErrInvalidInput, p.KeyLen)
	}
	if p.SaltLen < 1 {
		return fmt.Errorf("%w: salt length must be positive", ErrInvalidInput)
	}
	if p.NonceLen != 12 {
		return fmt.Errorf("%w: AES-GCM nonce must be 12 bytes", ErrInvalidInput)
	}
	if p.TagLen != 16 {
		return fmt.Errorf("%w: AES-GCM tag must be 16 bytes", ErrInvalidInput)
	}
	if p.SaltEncoding != SaltAsText && p.SaltEncoding != SaltAsBinary {
		return fmt.Errorf("%w: unknown salt encoding %s", ErrInvalidInput, p.SaltEncoding)
	}
	return nil
}
