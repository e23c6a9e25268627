package history

import (
	"github.com/dshills/cmdengine/internal/command"
)

// BeginGroup starts a command group.
// Commands executed while grouping are combined into a single undo unit.
func (m *Manager) BeginGroup(name string) {
	if m.grouping {
		// Already grouping, ignore nested calls
		return
	}

	m.grouping = true
	m.groupName = name
	m.groupCmds = nil
}

// EndGroup finishes a command group.
// All commands since BeginGroup are recorded as one command.Macro.
func (m *Manager) EndGroup() {
	if !m.grouping {
		return
	}

	m.grouping = false
	cmds := m.groupCmds
	m.groupCmds = nil

	if len(cmds) == 0 {
		return
	}

	m.redoStack = nil
	m.push(command.NewAppliedMacro(m.groupName, cmds...))
}

// CancelGroup ends a command group and undoes the commands executed in it.
// Nothing is recorded.
func (m *Manager) CancelGroup() error {
	if !m.grouping {
		return nil
	}

	m.grouping = false
	cmds := m.groupCmds
	m.groupCmds = nil

	if len(cmds) == 0 {
		return nil
	}
	return command.NewAppliedMacro(m.groupName, cmds...).Undo()
}

// IsGrouping returns true if currently in a command group.
func (m *Manager) IsGrouping() bool {
	return m.grouping
}

// Group executes fn within a command group.
// If fn returns an error, the commands fn executed are undone and a
// *command.CommitError carrying both failures is returned.
//
// Called while a group is already open, Group joins that group: on success
// fn's commands stay in it, on error only fn's commands are undone and the
// outer group stays open.
func (m *Manager) Group(name string, fn func() error) error {
	if m.grouping {
		return m.nestedGroup(name, fn)
	}

	m.BeginGroup(name)

	if err := fn(); err != nil {
		cerr := m.CancelGroup()
		if cerr != nil {
			m.logger.Error("cancel group failed", "group", name, "error", cerr)
		}
		return &command.CommitError{Description: name, Exec: err, Rollback: cerr}
	}

	m.EndGroup()
	return nil
}

func (m *Manager) nestedGroup(name string, fn func() error) error {
	start := len(m.groupCmds)

	err := fn()
	if err == nil {
		return nil
	}

	if !m.grouping || start > len(m.groupCmds) {
		// fn closed the outer group itself.
		return &command.CommitError{Description: name, Exec: err}
	}

	cmds := m.groupCmds[start:]
	m.groupCmds = m.groupCmds[:start:start]
	var cerr error
	if len(cmds) > 0 {
		cerr = command.NewAppliedMacro(name, cmds...).Undo()
		if cerr != nil {
			m.logger.Error("cancel nested group failed", "group", name, "error", cerr)
		}
	}
	return &command.CommitError{Description: name, Exec: err, Rollback: cerr}
}

// Checkpoint represents a point in history that can be returned to.
type Checkpoint struct {
	undoDepth int
}

// Checkpoint creates a checkpoint at the current history position.
func (m *Manager) Checkpoint() Checkpoint {
	return Checkpoint{undoDepth: len(m.undoStack)}
}

// UndoTo undoes all commands executed since the checkpoint.
func (m *Manager) UndoTo(cp Checkpoint) error {
	for len(m.undoStack) > cp.undoDepth {
		if _, err := m.Undo(); err != nil {
			return err
		}
	}
	return nil
}

// RedoTo redoes commands until the checkpoint depth is reached or redo is
// exhausted.
func (m *Manager) RedoTo(cp Checkpoint) error {
	for len(m.undoStack) < cp.undoDepth && len(m.redoStack) > 0 {
		if _, err := m.Redo(); err != nil {
			return err
		}
	}
	return nil
}
