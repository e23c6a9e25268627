package command

import (
	"errors"
	"fmt"
)

// Errors returned by command operations.
var (
	// ErrMacroExecuted indicates a child was added to a macro after it executed.
	ErrMacroExecuted = errors.New("macro already executed")

	// ErrAlreadyCommitted indicates Commit was called on a committed transaction.
	ErrAlreadyCommitted = errors.New("transaction already committed")

	// ErrNilCommand indicates a nil command was supplied.
	ErrNilCommand = errors.New("nil command")
)

// StepError reports the failure of one child inside a macro.
type StepError struct {
	Macro string // macro name
	Step  int    // zero-based index of the failing child
	Undo  bool   // true if the failure happened while undoing
	Err   error
}

func (e *StepError) Error() string {
	if e.Undo {
		return fmt.Sprintf("undo macro %q step %d: %v", e.Macro, e.Step, e.Err)
	}
	return fmt.Sprintf("macro %q step %d: %v", e.Macro, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// CommitError reports a failed commit.
//
// Exec is the failure raised by Execute. Rollback is the failure raised by
// the automatic Undo that followed, or nil if the rollback succeeded. A
// non-nil Rollback means the receiver may be left in an inconsistent state.
type CommitError struct {
	Description string
	Exec        error
	Rollback    error
}

func (e *CommitError) Error() string {
	if e.Rollback != nil {
		return fmt.Sprintf("commit %q: %v (rollback failed: %v)", e.Description, e.Exec, e.Rollback)
	}
	return fmt.Sprintf("commit %q: %v (rolled back)", e.Description, e.Exec)
}

// Unwrap exposes both failures to errors.Is and errors.As.
func (e *CommitError) Unwrap() []error {
	if e.Rollback != nil {
		return []error{e.Exec, e.Rollback}
	}
	return []error{e.Exec}
}

// RolledBack reports whether the automatic rollback succeeded.
func (e *CommitError) RolledBack() bool {
	return e.Rollback == nil
}
