package script

import "fmt"

// Command runs Lua source on execute and on undo.
type Command struct {
	rt   *Runtime
	desc string
	exec string
	undo string
}

// NewCommand creates a scripted command. An empty undo body makes Undo a
// no-op.
func NewCommand(rt *Runtime, description, exec, undo string) *Command {
	return &Command{
		rt:   rt,
		desc: description,
		exec: exec,
		undo: undo,
	}
}

// Execute runs the execute body.
func (c *Command) Execute() error {
	if c.exec == "" {
		return ErrEmptyScript
	}
	if err := c.rt.Run(c.exec); err != nil {
		return fmt.Errorf("script %q: %w", c.desc, err)
	}
	return nil
}

// Undo runs the undo body.
func (c *Command) Undo() error {
	if c.undo == "" {
		return nil
	}
	if err := c.rt.Run(c.undo); err != nil {
		return fmt.Errorf("undo script %q: %w", c.desc, err)
	}
	return nil
}

// Description returns the description given to NewCommand.
func (c *Command) Description() string {
	return "Script: " + c.desc
}
