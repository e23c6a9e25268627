package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/cmdengine/internal/command"
	"github.com/dshills/cmdengine/internal/history"
	"github.com/dshills/cmdengine/internal/receiver/editor"
)

type editorOptions struct {
	initial string
	words   []string
}

func addEditorFlags(fs *pflag.FlagSet, o *editorOptions) {
	fs.StringVar(&o.initial, "text", "", "initial editor text")
	fs.StringSliceVar(&o.words, "type", []string{"Hello", " World"}, "text fragments typed one command each")
}

func newEditorCmd(e *env) *cobra.Command {
	var opts editorOptions
	cmd := &cobra.Command{
		Use:   "editor",
		Short: "Undo/redo and macro demo against a text editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd.OutOrStdout(), e, opts)
		},
	}
	addEditorFlags(cmd.Flags(), &opts)
	return cmd
}

func runEditor(w io.Writer, e *env, opts editorOptions) error {
	ed := editor.New(opts.initial)
	m := history.NewManager(
		history.WithMaxEntries(e.cfg.History.MaxEntries),
		history.WithLogger(e.logger.With("component", "history")),
	)

	header(w, "Undo/Redo")
	for _, word := range opts.words {
		if err := m.Execute(editor.NewInsertCommand(ed, word)); err != nil {
			return err
		}
	}
	if len(opts.words) > 0 {
		last := opts.words[len(opts.words)-1]
		if err := m.Execute(editor.NewMoveCursorCommand(ed, -len([]rune(last)))); err != nil {
			failure(w, "move: %v", err)
		} else if err := m.Execute(editor.NewInsertCommand(ed, " Beautiful")); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, editor.Render(ed))
	renderHistory(w, m)

	step(w, "Undo")
	if err := undoOnce(w, m); err != nil {
		return err
	}
	fmt.Fprintln(w, editor.Render(ed))

	step(w, "Redo")
	if _, err := m.Redo(); err != nil {
		return err
	}
	fmt.Fprintln(w, editor.Render(ed))

	step(w, "Undo all")
	for m.CanUndo() {
		if err := undoOnce(w, m); err != nil {
			return err
		}
	}
	if err := undoOnce(w, m); err != nil {
		return err
	}
	fmt.Fprintln(w, editor.Render(ed))

	header(w, "Macro")
	macro := command.NewMacro("Format Text",
		editor.NewInsertCommand(ed, "\n"),
		editor.NewInsertCommand(ed, "=== Section ===\n"),
		editor.NewInsertCommand(ed, "Content here...\n"),
	)
	if err := m.Execute(macro); err != nil {
		return err
	}
	fmt.Fprintln(w, editor.Render(ed))
	renderHistory(w, m)

	step(w, "Undo macro")
	if err := undoOnce(w, m); err != nil {
		return err
	}
	fmt.Fprintln(w, editor.Render(ed))

	header(w, "Failed command")
	err := m.Execute(editor.NewDeleteCommand(ed, ed.Len()+1))
	failure(w, "%v", err)
	renderHistory(w, m)
	return nil
}

func undoOnce(w io.Writer, m *history.Manager) error {
	ok, err := m.Undo()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(w, dimStyle.Render("Nothing to undo"))
	}
	return nil
}
