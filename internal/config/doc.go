// Package config loads engine configuration.
//
// Values are resolved in order: built-in defaults, then an optional file
// (TOML, YAML, or JSON with comments, picked by extension), then
// CMDENGINE_* environment variables. Command-line flags are applied by the
// caller on top of the result.
//
// Example config.toml:
//
//	[history]
//	max_entries = 500
//
//	[queue]
//	capacity = 256
//	drain_timeout = "10s"
//
//	[log]
//	level = "debug"
//	format = "json"
package config
