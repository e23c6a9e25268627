package queue

import (
	"log/slog"

	"github.com/dshills/cmdengine/internal/command"
)

// DefaultCapacity is the number of commands a queue buffers by default.
const DefaultCapacity = 1024

// ErrorHandler receives failures of queued commands.
type ErrorHandler func(cmd command.Command, err error)

// Option configures a Queue.
type Option func(*Queue)

// WithCapacity sets the number of commands that can wait in the queue.
func WithCapacity(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.capacity = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(q *Queue) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// WithErrorHandler sets the handler for failed or panicking commands.
// The handler runs on the worker goroutine.
func WithErrorHandler(h ErrorHandler) Option {
	return func(q *Queue) {
		q.onError = h
	}
}
