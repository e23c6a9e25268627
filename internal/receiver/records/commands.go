package records

// AddCommand adds a record to a store.
type AddCommand struct {
	store  *Store
	Record string
	added  bool
}

// NewAddCommand creates a new add command.
func NewAddCommand(s *Store, record string) *AddCommand {
	return &AddCommand{store: s, Record: record}
}

// Execute adds the record.
func (c *AddCommand) Execute() error {
	if err := c.store.Add(c.Record); err != nil {
		return err
	}
	c.added = true
	return nil
}

// Undo removes the record if Execute added it.
func (c *AddCommand) Undo() error {
	if !c.added {
		return nil
	}
	if _, err := c.store.Remove(c.Record); err != nil {
		return err
	}
	c.added = false
	return nil
}

// Description returns a human-readable description.
func (c *AddCommand) Description() string {
	return "Add record: " + c.Record
}

// RemoveCommand removes a record from a store.
type RemoveCommand struct {
	store  *Store
	Record string
	index  int
}

// NewRemoveCommand creates a new remove command.
func NewRemoveCommand(s *Store, record string) *RemoveCommand {
	return &RemoveCommand{store: s, Record: record}
}

// Execute removes the record, remembering its position.
func (c *RemoveCommand) Execute() error {
	i, err := c.store.Remove(c.Record)
	if err != nil {
		return err
	}
	c.index = i
	return nil
}

// Undo puts the record back where it was.
func (c *RemoveCommand) Undo() error {
	return c.store.Insert(c.index, c.Record)
}

// Description returns a human-readable description.
func (c *RemoveCommand) Description() string {
	return "Remove record: " + c.Record
}
