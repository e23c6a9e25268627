package command

// Command represents an action that can be executed and undone.
//
// Undo reverses exactly the effect of the most recent Execute. Calling Undo
// before Execute is undefined. Implementations hold only the state they need
// to reverse their own effect.
type Command interface {
	// Execute performs the command and returns an error if it fails.
	Execute() error

	// Undo reverses the command and returns an error if it fails.
	Undo() error

	// Description returns a human-readable description of the command.
	Description() string
}

// Func is a command built from closures.
type Func struct {
	desc   string
	exec   func() error
	undo   func() error
	runs   int
	undone int
}

// New creates a command from an execute and an undo function.
// A nil undo makes Undo a no-op.
func New(description string, exec, undo func() error) *Func {
	return &Func{
		desc: description,
		exec: exec,
		undo: undo,
	}
}

// Execute calls the execute function.
func (f *Func) Execute() error {
	if f.exec == nil {
		return nil
	}
	if err := f.exec(); err != nil {
		return err
	}
	f.runs++
	return nil
}

// Undo calls the undo function.
func (f *Func) Undo() error {
	if f.undo == nil {
		return nil
	}
	if err := f.undo(); err != nil {
		return err
	}
	f.undone++
	return nil
}

// Description returns the description given to New.
func (f *Func) Description() string {
	return f.desc
}

// Runs returns the number of successful Execute calls.
func (f *Func) Runs() int {
	return f.runs
}

// Undone returns the number of successful Undo calls.
func (f *Func) Undone() int {
	return f.undone
}
