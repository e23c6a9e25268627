package history

import "errors"

// ErrGrouping is returned by Undo and Redo while a command group is open.
var ErrGrouping = errors.New("history: command group in progress")
