package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/cmdengine/internal/logging"
)

// Default configuration values.
const (
	DefaultMaxUndoEntries = 1000
	DefaultQueueCapacity  = 1024
	DefaultDrainTimeout   = 30 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = logging.FormatText
)

// ErrInvalid indicates a configuration value failed validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the engine configuration.
type Config struct {
	History HistoryConfig `toml:"history" yaml:"history" json:"history"`
	Queue   QueueConfig   `toml:"queue" yaml:"queue" json:"queue"`
	Log     LogConfig     `toml:"log" yaml:"log" json:"log"`
}

// HistoryConfig configures the undo/redo manager.
type HistoryConfig struct {
	// MaxEntries bounds the undo stack. Zero means unbounded.
	MaxEntries int `toml:"max_entries" yaml:"max_entries" json:"max_entries"`
}

// QueueConfig configures the asynchronous command queue.
type QueueConfig struct {
	// Capacity is the number of commands that may wait in the queue.
	Capacity int `toml:"capacity" yaml:"capacity" json:"capacity"`
	// DrainTimeout bounds how long shutdown waits for queued work.
	// Zero waits indefinitely.
	DrainTimeout Duration `toml:"drain_timeout" yaml:"drain_timeout" json:"drain_timeout"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" json:"level"`
	Format string `toml:"format" yaml:"format" json:"format"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		History: HistoryConfig{MaxEntries: DefaultMaxUndoEntries},
		Queue: QueueConfig{
			Capacity:     DefaultQueueCapacity,
			DrainTimeout: Duration(DefaultDrainTimeout),
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.History.MaxEntries < 0 {
		errs = append(errs, fmt.Errorf("%w: history.max_entries must be >= 0, got %d", ErrInvalid, c.History.MaxEntries))
	}
	if c.Queue.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("%w: queue.capacity must be > 0, got %d", ErrInvalid, c.Queue.Capacity))
	}
	if c.Queue.DrainTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: queue.drain_timeout must be >= 0, got %s", ErrInvalid, c.Queue.DrainTimeout))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level: %v", ErrInvalid, err))
	}
	switch c.Log.Format {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalid, c.Log.Format))
	}

	return errors.Join(errs...)
}

// LoggingOptions converts the log section for logging.New.
func (c Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level:  c.Log.Level,
		Format: c.Log.Format,
	}
}
