// Package editor provides a minimal text editor receiver and the commands
// that edit it.
package editor

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a cursor position or count outside the text.
var ErrOutOfRange = errors.New("out of range")

// Editor holds text and a cursor measured in runes.
type Editor struct {
	text   []rune
	cursor int
}

// New creates an editor containing text with the cursor at the end.
func New(text string) *Editor {
	r := []rune(text)
	return &Editor{text: r, cursor: len(r)}
}

// Insert inserts s at the cursor and moves the cursor past it.
func (e *Editor) Insert(s string) {
	r := []rune(s)
	e.text = append(e.text[:e.cursor], append(r, e.text[e.cursor:]...)...)
	e.cursor += len(r)
}

// DeleteBefore removes n runes before the cursor and returns them.
func (e *Editor) DeleteBefore(n int) (string, error) {
	if n < 0 || n > e.cursor {
		return "", fmt.Errorf("delete %d at %d: %w", n, e.cursor, ErrOutOfRange)
	}
	start := e.cursor - n
	deleted := string(e.text[start:e.cursor])
	e.text = append(e.text[:start], e.text[e.cursor:]...)
	e.cursor = start
	return deleted, nil
}

// MoveCursor moves the cursor by offset.
func (e *Editor) MoveCursor(offset int) error {
	return e.SetCursor(e.cursor + offset)
}

// SetCursor places the cursor at pos.
func (e *Editor) SetCursor(pos int) error {
	if pos < 0 || pos > len(e.text) {
		return fmt.Errorf("cursor %d: %w", pos, ErrOutOfRange)
	}
	e.cursor = pos
	return nil
}

// Text returns the current text.
func (e *Editor) Text() string {
	return string(e.text)
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Len returns the text length in runes.
func (e *Editor) Len() int {
	return len(e.text)
}
