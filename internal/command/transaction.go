package command

// State is the lifecycle state of a Transaction.
type State int

const (
	// StatePending means the wrapped command's effect is absent.
	StatePending State = iota
	// StateCommitted means the wrapped command's effect is visible.
	StateCommitted
	// StateRolledBack means a committed effect was reversed.
	StateRolledBack
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled-back"
	default:
		return "unknown"
	}
}

// Transaction wraps a command with commit and rollback semantics.
//
// Either the wrapped effect is fully visible (committed) or it is absent
// (pending, rolled back), provided the wrapped Undo is correct. A
// Transaction is itself a Command, so it can be recorded in a history.
type Transaction struct {
	cmd   Command
	state State
}

// NewTransaction wraps cmd in a pending transaction.
func NewTransaction(cmd Command) *Transaction {
	return &Transaction{cmd: cmd}
}

// Commit executes the wrapped command.
//
// Commit is allowed from StatePending and StateRolledBack. On failure the
// wrapped command is undone once and a *CommitError is returned; the state
// is left unchanged, so a failed recommit stays StateRolledBack.
func (t *Transaction) Commit() error {
	if t.state == StateCommitted {
		return ErrAlreadyCommitted
	}

	if err := t.cmd.Execute(); err != nil {
		return &CommitError{
			Description: t.cmd.Description(),
			Exec:        err,
			Rollback:    t.cmd.Undo(),
		}
	}

	t.state = StateCommitted
	return nil
}

// Rollback undoes a committed transaction.
// It is a no-op in any other state.
func (t *Transaction) Rollback() error {
	if t.state != StateCommitted {
		return nil
	}
	if err := t.cmd.Undo(); err != nil {
		return err
	}
	t.state = StateRolledBack
	return nil
}

// Execute implements Command by committing.
func (t *Transaction) Execute() error {
	return t.Commit()
}

// Undo implements Command by rolling back.
func (t *Transaction) Undo() error {
	return t.Rollback()
}

// Description returns the wrapped command's description.
func (t *Transaction) Description() string {
	return "Transaction: " + t.cmd.Description()
}

// State returns the current state.
func (t *Transaction) State() State {
	return t.state
}

// Committed returns true if the wrapped effect is visible.
func (t *Transaction) Committed() bool {
	return t.state == StateCommitted
}
