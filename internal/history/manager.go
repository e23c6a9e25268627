package history

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/dshills/cmdengine/internal/command"
	"github.com/dshills/cmdengine/internal/logging"
)

// Manager manages undo/redo state.
type Manager struct {
	undoStack []*record
	redoStack []*record

	// Grouping state
	grouping  bool
	groupName string
	groupCmds []command.Command

	// Configuration
	maxEntries int
	logger     *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxEntries bounds the undo stack. Zero means unbounded.
func WithMaxEntries(max int) Option {
	return func(m *Manager) {
		if max >= 0 {
			m.maxEntries = max
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a new history manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Execute runs a command and adds it to the undo stack.
//
// The redo stack is cleared whether or not the command succeeds. A failed
// command is not recorded.
func (m *Manager) Execute(cmd command.Command) error {
	if cmd == nil {
		return command.ErrNilCommand
	}

	err := cmd.Execute()
	m.redoStack = nil
	if err != nil {
		m.logger.Warn("command failed", "command", cmd.Description(), "error", err)
		return fmt.Errorf("execute %q: %w", cmd.Description(), err)
	}

	m.push(cmd)
	m.logger.Debug("command executed", "command", cmd.Description(), "undo_depth", len(m.undoStack))
	return nil
}

// push records an executed command.
func (m *Manager) push(cmd command.Command) {
	if m.grouping {
		m.groupCmds = append(m.groupCmds, cmd)
		return
	}

	m.undoStack = append(m.undoStack, newRecord(cmd))
	m.trim()
}

// trim enforces max entries by dropping the oldest records.
func (m *Manager) trim() {
	if m.maxEntries > 0 && len(m.undoStack) > m.maxEntries {
		excess := len(m.undoStack) - m.maxEntries
		clear(m.undoStack[:excess])
		m.undoStack = m.undoStack[excess:]
	}
}

// Undo undoes the last command.
//
// It returns false with a nil error when there is nothing to undo. If the
// command's Undo fails, the command stays on the undo stack. While a group
// is open Undo returns ErrGrouping.
func (m *Manager) Undo() (bool, error) {
	if m.grouping {
		return false, ErrGrouping
	}
	if len(m.undoStack) == 0 {
		m.logger.Info("nothing to undo")
		return false, nil
	}

	rec := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]

	if err := rec.command.Undo(); err != nil {
		m.undoStack = append(m.undoStack, rec)
		return false, fmt.Errorf("undo %q: %w", rec.command.Description(), err)
	}

	m.redoStack = append(m.redoStack, rec)
	m.logger.Debug("command undone", "command", rec.command.Description())
	return true, nil
}

// Redo re-executes the last undone command.
//
// It returns false with a nil error when there is nothing to redo. If the
// command's Execute fails, the command stays on the redo stack. While a
// group is open Redo returns ErrGrouping.
func (m *Manager) Redo() (bool, error) {
	if m.grouping {
		return false, ErrGrouping
	}
	if len(m.redoStack) == 0 {
		m.logger.Info("nothing to redo")
		return false, nil
	}

	rec := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]

	if err := rec.command.Execute(); err != nil {
		m.redoStack = append(m.redoStack, rec)
		return false, fmt.Errorf("redo %q: %w", rec.command.Description(), err)
	}

	m.undoStack = append(m.undoStack, rec)
	m.logger.Debug("command redone", "command", rec.command.Description())
	return true, nil
}

// History yields the descriptions of undoable commands, most recent first.
// The sequence reads the stack lazily and can be ranged over repeatedly.
func (m *Manager) History() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := len(m.undoStack) - 1; i >= 0; i-- {
			if !yield(m.undoStack[i].command.Description()) {
				return
			}
		}
	}
}

// Entries returns the undo stack, most recent first.
func (m *Manager) Entries() []Entry {
	return snapshot(m.undoStack)
}

// RedoEntries returns the redo stack, next redo first.
func (m *Manager) RedoEntries() []Entry {
	return snapshot(m.redoStack)
}

// PeekUndo returns the next undo entry without removing it.
func (m *Manager) PeekUndo() (Entry, bool) {
	if len(m.undoStack) == 0 {
		return Entry{}, false
	}
	return m.undoStack[len(m.undoStack)-1].entry(), true
}

// PeekRedo returns the next redo entry without removing it.
func (m *Manager) PeekRedo() (Entry, bool) {
	if len(m.redoStack) == 0 {
		return Entry{}, false
	}
	return m.redoStack[len(m.redoStack)-1].entry(), true
}

// CanUndo returns true if undo is available.
func (m *Manager) CanUndo() bool {
	return len(m.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (m *Manager) CanRedo() bool {
	return len(m.redoStack) > 0
}

// UndoCount returns the number of undoable commands.
func (m *Manager) UndoCount() int {
	return len(m.undoStack)
}

// RedoCount returns the number of redoable commands.
func (m *Manager) RedoCount() int {
	return len(m.redoStack)
}

// MaxEntries returns the undo bound, zero if unbounded.
func (m *Manager) MaxEntries() int {
	return m.maxEntries
}

// Clear removes all undo/redo history.
func (m *Manager) Clear() {
	m.undoStack = nil
	m.redoStack = nil
	m.grouping = false
	m.groupCmds = nil
}
