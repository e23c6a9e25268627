package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/cmdengine/internal/command"
)

// Entry describes a recorded command.
type Entry struct {
	ID          uuid.UUID
	Description string
	Timestamp   time.Time
}

// record wraps a command with metadata.
type record struct {
	id        uuid.UUID
	command   command.Command
	timestamp time.Time
}

func newRecord(cmd command.Command) *record {
	return &record{
		id:        uuid.New(),
		command:   cmd,
		timestamp: time.Now(),
	}
}

func (r *record) entry() Entry {
	return Entry{
		ID:          r.id,
		Description: r.command.Description(),
		Timestamp:   r.timestamp,
	}
}

// snapshot returns entries most recent first.
func snapshot(stack []*record) []Entry {
	result := make([]Entry, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		result = append(result, stack[i].entry())
	}
	return result
}
