// Package history provides linear undo/redo over commands.
//
// The Manager executes commands and records them on an undo stack:
//
//	m := history.NewManager(history.WithMaxEntries(1000))
//
//	// Execute commands
//	m.Execute(cmd)
//
//	// Undo/redo
//	m.Undo()
//	m.Redo()
//
// Executing a new command discards the redo stack. Branching history is not
// supported.
//
// # Command Grouping
//
// Multiple commands can be grouped as a single undo unit:
//
//	m.BeginGroup("Find and Replace")
//	// ... multiple Execute calls ...
//	m.EndGroup()
//
// The grouped commands are recorded as one command.Macro. Undo and Redo
// return ErrGrouping until the group is ended or cancelled.
//
// A Manager is not safe for concurrent use.
package history
