package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/cmdengine/internal/command"
	"github.com/dshills/cmdengine/internal/queue"
	"github.com/dshills/cmdengine/internal/receiver/records"
)

type queueOptions struct {
	tasks     int
	producers int
	delay     time.Duration
}

func addQueueFlags(fs *pflag.FlagSet, o *queueOptions) {
	fs.IntVarP(&o.tasks, "tasks", "n", 5, "tasks per producer")
	fs.IntVarP(&o.producers, "producers", "p", 1, "concurrent producer goroutines")
	fs.DurationVar(&o.delay, "delay", 10*time.Millisecond, "simulated work per task")
}

func newQueueCmd(e *env) *cobra.Command {
	var opts queueOptions
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Asynchronous command queue demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueue(cmd.Context(), cmd.OutOrStdout(), e, opts)
		},
	}
	addQueueFlags(cmd.Flags(), &opts)
	return cmd
}

func runQueue(ctx context.Context, w io.Writer, e *env, opts queueOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store := records.NewStore()
	logger := e.logger.With("component", "queue")

	q := queue.New(
		queue.WithCapacity(e.cfg.Queue.Capacity),
		queue.WithLogger(logger),
		queue.WithErrorHandler(func(cmd command.Command, err error) {
			logger.Error("task failed", "task", cmd.Description(), "error", err)
		}),
	)

	header(w, "Command Queue")
	var wg sync.WaitGroup
	for p := 0; p < opts.producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < opts.tasks; i++ {
				name := fmt.Sprintf("task %d.%d", p, i)
				add := records.NewAddCommand(store, name)
				task := command.New(add.Description(), func() error {
					time.Sleep(opts.delay)
					return add.Execute()
				}, add.Undo)
				if err := q.Enqueue(task); err != nil {
					logger.Warn("enqueue rejected", "task", name, "error", err)
				}
			}
		}(p)
	}
	wg.Wait()
	fmt.Fprintf(w, "Queue size after enqueue: %d\n", q.Size())

	drainCtx := ctx
	if timeout := e.cfg.Queue.DrainTimeout.Std(); timeout > 0 {
		var cancel context.CancelFunc
		drainCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := q.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("drain queue: %w", err)
	}

	stats := q.Stats()
	step(w, "Processed %d tasks (%d succeeded, %d failed, %d rejected)",
		stats.Processed, stats.Succeeded, stats.Failed+stats.Panicked, stats.Rejected)
	fmt.Fprintf(w, "Records written: %d\n", store.Len())
	return nil
}
