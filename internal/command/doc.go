// Package command defines the unit of undoable work used throughout the engine.
//
// A Command encapsulates a reversible action against some receiver. The
// package provides the contract plus three generic building blocks:
//
// # Func
//
// Func builds a command from a pair of closures, useful when the receiver
// already exposes the forward and inverse operations:
//
//	cmd := command.New("Create user", createUser, deleteUser)
//
// # Macro
//
// Macro groups child commands so they execute and undo as one unit.
// Children run in insertion order and are undone in strictly reverse order.
// A failing child stops the macro; already applied children stay applied
// until the caller undoes the macro.
//
// # Transaction
//
// Transaction wraps a command with commit/rollback semantics. A failed
// commit undoes the wrapped command before reporting the failure:
//
//	tx := command.NewTransaction(cmd)
//	if err := tx.Commit(); err != nil {
//	    var ce *command.CommitError
//	    if errors.As(err, &ce) && ce.Rollback != nil {
//	        // receiver may be inconsistent
//	    }
//	}
//
// None of the types in this package are safe for concurrent use.
package command
