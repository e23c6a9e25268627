package script

import "errors"

// Errors for script runtime operations.
var (
	// ErrRuntimeClosed is returned when operating on a closed runtime.
	ErrRuntimeClosed = errors.New("script runtime is closed")

	// ErrEmptyScript is returned when a command has no execute body.
	ErrEmptyScript = errors.New("empty script")
)
