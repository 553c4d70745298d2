// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line given in args and blocks until it
	// finishes.
	Run(ctx context.Context, args []string) error
}

// Prompter asks the user for input.
type Prompter interface {
	// Password reads a line without echoing it when the input is a
	// terminal.
	Password(prompt string) (string, error)

	// Line reads one line of visible input.
	Line(prompt string) (string, error)
}

// Clipboard receives revealed secrets for `reveal --copy`.
type Clipboard interface {
	WriteAll(text string) error
}
