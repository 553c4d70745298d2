package client

import "errors"

var (
	// ErrInputClosed is returned by a Prompter when its input reached EOF.
	ErrInputClosed = errors.New("input closed")

	ErrNothingToUpdate  = errors.New("nothing to update: pass --name and/or --secret")
	ErrAborted          = errors.New("aborted")
	ErrPasswordMismatch = errors.New("master passwords do not match")
)
