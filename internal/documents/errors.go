package documents

import "errors"

var (
	// ErrInvalidInput means a required field was missing; no storage or
	// database call was made.
	ErrInvalidInput = errors.New("title, subject and file are required")
)
