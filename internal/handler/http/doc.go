// Package http implements the REST transport of the vault storage server.
//
// Routes are wired with chi. Every request passes through trace id,
// access logging and gzip middleware; requests that carry a body are also
// checked against the HashSHA256 header when the server has a hash key.
// Handlers decode JSON, call the vault service and map its sentinel errors
// to status codes with plain text bodies from internal/app.
//
// The server only ever sees envelopes and salts. Nothing here decrypts.
package http
