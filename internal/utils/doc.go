// Package utils provides small helpers shared by the server and the client:
// the resty HTTP client wrapper, request body HMAC signing, JSON response
// writing and vault id generation.
package utils
