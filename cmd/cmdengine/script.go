package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/cmdengine/internal/history"
	"github.com/dshills/cmdengine/internal/receiver/records"
	"github.com/dshills/cmdengine/internal/script"
)

type scriptOptions struct {
	exec      string
	undo      string
	undoAfter bool
}

func addScriptFlags(fs *pflag.FlagSet, o *scriptOptions) {
	fs.StringVar(&o.exec, "exec", `store.add("alice"); store.add("bob")`, "Lua run on execute")
	fs.StringVar(&o.undo, "undo", `store.remove("bob"); store.remove("alice")`, "Lua run on undo")
	fs.BoolVar(&o.undoAfter, "undo-after", true, "undo the script command after running it")
}

func newScriptCmd(e *env) *cobra.Command {
	var opts scriptOptions
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Lua-scripted command demo against a record store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd.OutOrStdout(), e, opts)
		},
	}
	addScriptFlags(cmd.Flags(), &opts)
	return cmd
}

// bindStore exposes a record store to Lua as the "store" module.
func bindStore(rt *script.Runtime, s *records.Store) {
	rt.RegisterModule("store", map[string]lua.LGFunction{
		"add": func(L *lua.LState) int {
			if err := s.Add(L.CheckString(1)); err != nil {
				L.RaiseError("%s", err.Error())
			}
			return 0
		},
		"remove": func(L *lua.LState) int {
			if _, err := s.Remove(L.CheckString(1)); err != nil {
				L.RaiseError("%s", err.Error())
			}
			return 0
		},
		"count": func(L *lua.LState) int {
			L.Push(lua.LNumber(s.Len()))
			return 1
		},
	})
}

func runScript(w io.Writer, e *env, opts scriptOptions) error {
	rt, err := script.NewRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	store := records.NewStore()
	bindStore(rt, store)

	m := history.NewManager(
		history.WithMaxEntries(e.cfg.History.MaxEntries),
		history.WithLogger(e.logger.With("component", "history")),
	)

	header(w, "Scripted Command")
	if err := m.Execute(script.NewCommand(rt, "store edit", opts.exec, opts.undo)); err != nil {
		failure(w, "%v", err)
		printRecords(w, store)
		return nil
	}
	printRecords(w, store)
	renderHistory(w, m)

	if opts.undoAfter {
		step(w, "Undo")
		if _, err := m.Undo(); err != nil {
			return err
		}
		printRecords(w, store)
	}
	fmt.Fprintf(w, "Undo depth: %d\n", m.UndoCount())
	return nil
}
