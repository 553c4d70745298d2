// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the zero-vault command line client.
//
// Commands are built with cobra. Secrets are sealed and opened in this
// process; the server only stores envelopes. The master password is read
// from the terminal without echo and kept in a session for the lifetime of
// one command, or of an interactive shell until it auto-locks.
package client
