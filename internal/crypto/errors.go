// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the envelope-encryption components. Callers
// match them with [errors.Is]; none of them ever carries secret material.
var (
	// ErrInvalidInput is returned when a caller-supplied value cannot be used
	// for derivation or encryption: an empty password, a salt that is not
	// hex of the configured length, or a key of the wrong size.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedEnvelope is returned when an envelope is not valid base64
	// or is too short to contain a nonce.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrDecryptionFailed is returned on any authentication-tag mismatch.
	// A wrong password and a tampered envelope are deliberately reported
	// the same way.
	ErrDecryptionFailed = errors.New("wrong password or corrupted data")
)

// Diagnostic codes reported by [Code].
const (
	CodeInvalidInput      = "invalid_input"
	CodeMalformedEnvelope = "malformed_envelope"
	CodeDecryptionFailed  = "decryption_failed"
	CodeInternal          = "internal"
)

// Code maps err to a stable diagnostic code suitable for logs and metrics.
// It returns an empty string for a nil error and [CodeInternal] for errors
// that do not belong to this package (e.g. a failing random source).
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrMalformedEnvelope):
		return CodeMalformedEnvelope
	case errors.Is(err, ErrDecryptionFailed):
		return CodeDecryptionFailed
	default:
		return CodeInternal
	}
}
