package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultMaxUndoEntries, cfg.History.MaxEntries)
	assert.Equal(t, DefaultQueueCapacity, cfg.Queue.Capacity)
	assert.Equal(t, DefaultDrainTimeout, cfg.Queue.DrainTimeout.Std())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		content string
	}{
		{"toml", ".toml", `
[history]
max_entries = 50

[queue]
capacity = 8
drain_timeout = "2s"

[log]
level = "debug"
format = "json"
`},
		{"yaml", ".yaml", `
history:
  max_entries: 50
queue:
  capacity: 8
  drain_timeout: 2s
log:
  level: debug
  format: json
`},
		{"jsonc", ".jsonc", `{
  // undo bound
  "history": {"max_entries": 50},
  "queue": {"capacity": 8, "drain_timeout": "2s"}, /* trailing comma next */
  "log": {"level": "debug", "format": "json",},
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			require.NoError(t, Decode(tt.ext, []byte(tt.content), &cfg))
			assert.Equal(t, 50, cfg.History.MaxEntries)
			assert.Equal(t, 8, cfg.Queue.Capacity)
			assert.Equal(t, 2*time.Second, cfg.Queue.DrainTimeout.Std())
			assert.Equal(t, "debug", cfg.Log.Level)
			assert.Equal(t, "json", cfg.Log.Format)
		})
	}
}

func TestDecodePartialKeepsDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, Decode(".yml", []byte("queue:\n  capacity: 3\n"), &cfg))
	assert.Equal(t, 3, cfg.Queue.Capacity)
	assert.Equal(t, DefaultMaxUndoEntries, cfg.History.MaxEntries)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	assert.Error(t, Decode(".toml", []byte("[queue]\nworkers = 4\n"), &cfg))
	assert.Error(t, Decode(".yaml", []byte("queue:\n  workers: 4\n"), &cfg))
	assert.Error(t, Decode(".json", []byte(`{"queue": {"workers": 4}}`), &cfg))
}

func TestDecodeUnsupported(t *testing.T) {
	cfg := Default()
	assert.ErrorIs(t, Decode(".ini", nil, &cfg), ErrUnsupportedFormat)
}

func TestDecodeBadDuration(t *testing.T) {
	cfg := Default()
	assert.Error(t, Decode(".yaml", []byte("queue:\n  drain_timeout: soon\n"), &cfg))
}

func TestLoadWithEnv(t *testing.T) {
	path := writeFile(t, "engine.toml", "[history]\nmax_entries = 10\n")
	t.Setenv("CMDENGINE_HISTORY_MAX_ENTRIES", "20")
	t.Setenv("CMDENGINE_LOG_LEVEL", "WARN")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.History.MaxEntries)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadNoPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Queue, cfg.Queue)
}

func TestLoadInvalid(t *testing.T) {
	path := writeFile(t, "bad.yaml", "queue:\n  capacity: 0\nlog:\n  format: xml\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "queue.capacity")
	assert.Contains(t, err.Error(), "log.format")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CMDENGINE_QUEUE_CAPACITY":      "64",
		"CMDENGINE_QUEUE_DRAIN_TIMEOUT": "150ms",
		"CMDENGINE_LOG_FORMAT":          "JSON",
		"CMDENGINE_HISTORY_MAX_ENTRIES": " ",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg, lookup))
	assert.Equal(t, 64, cfg.Queue.Capacity)
	assert.Equal(t, 150*time.Millisecond, cfg.Queue.DrainTimeout.Std())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultMaxUndoEntries, cfg.History.MaxEntries)

	env["CMDENGINE_QUEUE_CAPACITY"] = "many"
	assert.Error(t, ApplyEnv(&cfg, lookup))
	assert.Len(t, EnvVars(), 5)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.History.MaxEntries = -1
	cfg.Queue.DrainTimeout = Duration(-time.Second)
	cfg.Log.Level = "chatty"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "history.max_entries")
	assert.Contains(t, err.Error(), "queue.drain_timeout")
	assert.Contains(t, err.Error(), "log.level")
}
