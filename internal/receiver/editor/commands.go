package editor

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// InsertCommand inserts text at the cursor.
type InsertCommand struct {
	editor *Editor
	Text   string
	pos    int
}

// NewInsertCommand creates a new insert command.
func NewInsertCommand(e *Editor, text string) *InsertCommand {
	return &InsertCommand{editor: e, Text: text}
}

// Execute inserts the text at the cursor.
func (c *InsertCommand) Execute() error {
	c.pos = c.editor.Cursor()
	c.editor.Insert(c.Text)
	return nil
}

// Undo removes the inserted text and restores the cursor.
func (c *InsertCommand) Undo() error {
	n := len([]rune(c.Text))
	if err := c.editor.SetCursor(c.pos + n); err != nil {
		return fmt.Errorf("undo insert: %w", err)
	}
	if _, err := c.editor.DeleteBefore(n); err != nil {
		return fmt.Errorf("undo insert: %w", err)
	}
	return nil
}

// Description returns a human-readable description.
func (c *InsertCommand) Description() string {
	switch c.Text {
	case "\n":
		return "Insert newline"
	case "\t":
		return "Insert tab"
	}
	if n := uniseg.GraphemeClusterCount(c.Text); n > 20 {
		return fmt.Sprintf("Insert %d characters", n)
	}
	return fmt.Sprintf("Insert %q", c.Text)
}

// DeleteCommand deletes characters before the cursor.
type DeleteCommand struct {
	editor  *Editor
	Count   int
	deleted string
	pos     int
}

// NewDeleteCommand creates a command deleting count characters.
func NewDeleteCommand(e *Editor, count int) *DeleteCommand {
	return &DeleteCommand{editor: e, Count: count}
}

// Execute deletes the characters. It fails if fewer than Count characters
// precede the cursor.
func (c *DeleteCommand) Execute() error {
	c.pos = c.editor.Cursor()
	deleted, err := c.editor.DeleteBefore(c.Count)
	if err != nil {
		return err
	}
	c.deleted = deleted
	return nil
}

// Undo reinserts the deleted characters and restores the cursor.
func (c *DeleteCommand) Undo() error {
	start := c.pos - len([]rune(c.deleted))
	if err := c.editor.SetCursor(start); err != nil {
		return fmt.Errorf("undo delete: %w", err)
	}
	c.editor.Insert(c.deleted)
	return nil
}

// Description returns a human-readable description.
func (c *DeleteCommand) Description() string {
	if c.Count == 1 {
		return "Backspace"
	}
	return fmt.Sprintf("Delete %d characters", c.Count)
}

// MoveCursorCommand moves the cursor by an offset.
type MoveCursorCommand struct {
	editor   *Editor
	Offset   int
	previous int
}

// NewMoveCursorCommand creates a new cursor move command.
func NewMoveCursorCommand(e *Editor, offset int) *MoveCursorCommand {
	return &MoveCursorCommand{editor: e, Offset: offset}
}

// Execute moves the cursor.
func (c *MoveCursorCommand) Execute() error {
	c.previous = c.editor.Cursor()
	return c.editor.MoveCursor(c.Offset)
}

// Undo restores the previous cursor position.
func (c *MoveCursorCommand) Undo() error {
	return c.editor.SetCursor(c.previous)
}

// Description returns a human-readable description.
func (c *MoveCursorCommand) Description() string {
	return fmt.Sprintf("Move cursor by %d", c.Offset)
}

// Render returns the text with a caret line marking the cursor.
func Render(e *Editor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Text: %q\n", e.Text())
	fmt.Fprintf(&b, "Cursor: %d/%d", e.Cursor(), e.Len())
	return b.String()
}
