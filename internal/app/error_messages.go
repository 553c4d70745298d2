// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the server
// handlers and by the client when it turns errors into text.
//
// The Msg* constants are written into HTTP response bodies by the server and
// matched back to sentinel errors by the client, so both sides share one
// wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgEmptyVaultName is returned when a vault name is blank.
	MsgEmptyVaultName = "vault name is empty"

	// MsgEmptyEncryptedSecret is returned when a create request carries no
	// envelope.
	MsgEmptyEncryptedSecret = "encrypted secret is empty"

	// MsgInvalidSalt is returned when the salt is not 32 lowercase hex
	// characters.
	MsgInvalidSalt = "salt must be 32 lowercase hex characters"

	// MsgInvalidEnvelope is returned when the envelope is not base64 or is
	// too short to hold a nonce and a tag.
	MsgInvalidEnvelope = "encrypted secret is not a valid envelope"

	// MsgSaltIsImmutable is returned when an update request tries to change
	// the salt of a vault.
	MsgSaltIsImmutable = "salt cannot be changed"

	// MsgNothingToUpdate is returned when an update request sets no field.
	MsgNothingToUpdate = "nothing to update"

	// MsgVaultNotFound is returned when no vault has the requested id.
	MsgVaultNotFound = "vault not found"

	// MsgVaultAlreadyExists is returned on a vault id collision.
	MsgVaultAlreadyExists = "vault already exists"

	// MsgRequestHashMismatch is returned when the HashSHA256 header does not
	// match the request body.
	MsgRequestHashMismatch = "request hash mismatch"

	// MsgMethodNotAllowed is returned for a method the route does not serve.
	MsgMethodNotAllowed = "method not allowed"
)

// User-facing messages printed by the client.
const (
	// MsgWrongPasswordOrCorrupted covers both a wrong master password and a
	// tampered or truncated envelope. The two are never told apart.
	MsgWrongPasswordOrCorrupted = "wrong password or corrupted data"

	// MsgPasswordRequired is shown when an operation needs the master
	// password and none is set.
	MsgPasswordRequired = "master password required"

	// MsgServerUnavailable is shown when the server cannot be reached.
	MsgServerUnavailable = "vault server is unavailable"
)
