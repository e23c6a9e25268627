// Package queue executes commands asynchronously on a single worker.
//
// A Queue accepts commands from any number of goroutines and executes them
// one at a time, in the order they were accepted:
//
//	q := queue.New(queue.WithCapacity(256))
//	defer q.Close()
//
//	if err := q.Enqueue(cmd); err != nil {
//	    // queue.ErrClosed or queue.ErrFull
//	}
//
// Enqueue never waits for execution. Results of queued commands are not
// returned to the producer; failures are logged and passed to the handler
// installed with WithErrorHandler.
//
// Close stops accepting commands, lets the worker run everything already
// queued, and returns once the worker has exited. No accepted command is
// dropped and none runs after Close returns.
//
// Ordering across producers is whatever order their Enqueue calls
// completed in.
package queue
