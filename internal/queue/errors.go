package queue

import "errors"

// Sentinel errors for the queue package.
var (
	// ErrClosed is returned when Enqueue is called after shutdown began.
	ErrClosed = errors.New("command queue is closed")

	// ErrFull is returned when the queue is at capacity.
	ErrFull = errors.New("command queue is full")

	// ErrPanic wraps a panic raised by a queued command.
	ErrPanic = errors.New("command panicked")
)
