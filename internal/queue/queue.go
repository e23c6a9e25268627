package queue

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/cmdengine/internal/command"
	"github.com/dshills/cmdengine/internal/logging"
)

// Queue is a FIFO of commands drained by one worker goroutine.
type Queue struct {
	// Configuration
	capacity int
	logger   *slog.Logger
	onError  ErrorHandler

	// State
	mu     sync.Mutex // guards closed and sends on tasks
	tasks  chan command.Command
	closed bool
	worker errgroup.Group
	done   chan struct{}

	// Stats
	enqueued    atomic.Uint64
	processed   atomic.Uint64
	succeeded   atomic.Uint64
	failed      atomic.Uint64
	panicked    atomic.Uint64
	rejected    atomic.Uint64
	totalTimeNs atomic.Int64
}

// New creates a queue and starts its worker.
func New(opts ...Option) *Queue {
	q := &Queue{
		capacity: DefaultCapacity,
		logger:   logging.Discard(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}

	q.tasks = make(chan command.Command, q.capacity)
	q.worker.Go(q.run)

	return q
}

// Enqueue adds a command for asynchronous execution.
// It returns ErrClosed after shutdown began and ErrFull at capacity.
func (q *Queue) Enqueue(cmd command.Command) error {
	if cmd == nil {
		return command.ErrNilCommand
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.rejected.Add(1)
		return ErrClosed
	}

	select {
	case q.tasks <- cmd:
		q.enqueued.Add(1)
		return nil
	default:
		q.rejected.Add(1)
		return ErrFull
	}
}

// run processes commands until the channel is closed and empty.
func (q *Queue) run() error {
	defer close(q.done)
	for cmd := range q.tasks {
		q.execute(cmd)
	}
	q.logger.Debug("command queue worker stopped", "processed", q.processed.Load())
	return nil
}

// execute runs a single command with panic recovery.
func (q *Queue) execute(cmd command.Command) {
	q.processed.Add(1)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			q.panicked.Add(1)
			err := fmt.Errorf("%w: %v", ErrPanic, r)
			q.logger.Error("queued command panicked",
				"command", cmd.Description(),
				"panic", r,
				"stack", string(debug.Stack()))
			q.report(cmd, err)
		}
		q.totalTimeNs.Add(time.Since(start).Nanoseconds())
	}()

	if err := cmd.Execute(); err != nil {
		q.failed.Add(1)
		q.logger.Warn("queued command failed", "command", cmd.Description(), "error", err)
		q.report(cmd, err)
		return
	}

	q.succeeded.Add(1)
	q.logger.Debug("queued command executed", "command", cmd.Description())
}

// report passes a failure to the error handler, shielding the worker from
// handler panics.
func (q *Queue) report(cmd command.Command, err error) {
	if q.onError == nil {
		return
	}
	defer func() { _ = recover() }()
	q.onError(cmd, err)
}

// Size returns the number of commands waiting to execute.
// The value is a snapshot and may be stale by the time it is used.
func (q *Queue) Size() int {
	return len(q.tasks)
}

// Capacity returns the maximum number of waiting commands.
func (q *Queue) Capacity() int {
	return q.capacity
}

// IsClosed returns true once shutdown has begun.
func (q *Queue) IsClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Done returns a channel closed when the worker has exited.
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

// Shutdown stops accepting commands and waits for the worker to drain the
// queue. If ctx ends first, Shutdown returns ctx.Err(); the worker still
// finishes the remaining commands in the background.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
		q.logger.Debug("command queue closing", "pending", len(q.tasks))
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return q.worker.Wait()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting commands and blocks until every queued command has
// executed and the worker has exited. It is safe to call more than once.
func (q *Queue) Close() error {
	return q.Shutdown(context.Background())
}

// Stats contains statistics for a queue.
type Stats struct {
	// Enqueued is the number of commands accepted.
	Enqueued uint64

	// Processed is the number of commands the worker picked up.
	Processed uint64

	// Succeeded is the number of commands that executed without error.
	Succeeded uint64

	// Failed is the number of commands that returned an error.
	Failed uint64

	// Panicked is the number of commands that panicked.
	Panicked uint64

	// Rejected is the number of Enqueue calls refused (closed or full).
	Rejected uint64

	// Pending is the number of commands waiting.
	Pending int

	// AvgDuration is the average execution time.
	AvgDuration time.Duration
}

// Stats returns queue statistics.
func (q *Queue) Stats() Stats {
	processed := q.processed.Load()
	var avg time.Duration
	if processed > 0 {
		avg = time.Duration(q.totalTimeNs.Load() / int64(processed))
	}
	return Stats{
		Enqueued:    q.enqueued.Load(),
		Processed:   processed,
		Succeeded:   q.succeeded.Load(),
		Failed:      q.failed.Load(),
		Panicked:    q.panicked.Load(),
		Rejected:    q.rejected.Load(),
		Pending:     q.Size(),
		AvgDuration: avg,
	}
}
