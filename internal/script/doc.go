// Package script provides commands whose execute and undo bodies are Lua
// source.
//
// A Runtime wraps a gopher-lua state opened with only the base, table,
// string, and math libraries. Receivers are exposed to scripts by
// registering Go functions or modules:
//
//	rt, _ := script.NewRuntime()
//	defer rt.Close()
//	rt.RegisterModule("store", map[string]lua.LGFunction{
//	    "add":    addRecord,
//	    "remove": removeRecord,
//	})
//
//	cmd := script.NewCommand(rt, "Add alice", `store.add("alice")`, `store.remove("alice")`)
//
// gopher-lua states are not goroutine-safe; Runtime serializes access with a
// mutex, so commands sharing a runtime may run from a queue worker.
package script
