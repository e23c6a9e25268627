package command

import "fmt"

// Macro groups multiple commands as one unit.
type Macro struct {
	name     string
	children []Command
	applied  int
	executed bool
}

// NewMacro creates a new macro command.
func NewMacro(name string, children ...Command) *Macro {
	return &Macro{
		name:     name,
		children: children,
	}
}

// Add appends a child command.
// Adding after the macro has executed returns ErrMacroExecuted.
func (m *Macro) Add(cmd Command) error {
	if cmd == nil {
		return ErrNilCommand
	}
	if m.executed {
		return ErrMacroExecuted
	}
	m.children = append(m.children, cmd)
	return nil
}

// Execute runs all children in insertion order.
//
// A failing child stops the macro. Children that already ran are not rolled
// back; Applied reports how many took effect and Undo reverses only those.
func (m *Macro) Execute() error {
	m.executed = true
	m.applied = 0
	for i, cmd := range m.children {
		if err := cmd.Execute(); err != nil {
			return &StepError{Macro: m.name, Step: i, Err: err}
		}
		m.applied = i + 1
	}
	return nil
}

// Undo reverses the applied children in reverse order.
func (m *Macro) Undo() error {
	for i := m.applied - 1; i >= 0; i-- {
		if err := m.children[i].Undo(); err != nil {
			return &StepError{Macro: m.name, Step: i, Undo: true, Err: err}
		}
		m.applied = i
	}
	return nil
}

// Description returns the macro name and child count.
func (m *Macro) Description() string {
	return fmt.Sprintf("Macro: %s (%d commands)", m.name, len(m.children))
}

// Name returns the macro name.
func (m *Macro) Name() string {
	return m.name
}

// Len returns the number of children.
func (m *Macro) Len() int {
	return len(m.children)
}

// Applied returns the number of children whose effect is currently applied.
func (m *Macro) Applied() int {
	return m.applied
}

// IsEmpty returns true if the macro has no children.
func (m *Macro) IsEmpty() bool {
	return len(m.children) == 0
}

// NewAppliedMacro creates a macro from children that have already executed.
// Undo reverses all of them; adding further children is rejected.
func NewAppliedMacro(name string, children ...Command) *Macro {
	return &Macro{
		name:     name,
		children: children,
		applied:  len(children),
		executed: true,
	}
}
