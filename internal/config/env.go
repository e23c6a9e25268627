package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CMDENGINE_"

// LookupFunc reports the value of an environment variable.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// envSetter applies one environment value to a config.
type envSetter func(cfg *Config, value string) error

// envMapping maps environment variables to config fields.
var envMapping = map[string]envSetter{
	EnvPrefix + "HISTORY_MAX_ENTRIES": func(cfg *Config, v string) error {
		return setInt(&cfg.History.MaxEntries, v)
	},
	EnvPrefix + "QUEUE_CAPACITY": func(cfg *Config, v string) error {
		return setInt(&cfg.Queue.Capacity, v)
	},
	EnvPrefix + "QUEUE_DRAIN_TIMEOUT": func(cfg *Config, v string) error {
		return cfg.Queue.DrainTimeout.UnmarshalText([]byte(v))
	},
	EnvPrefix + "LOG_LEVEL": func(cfg *Config, v string) error {
		cfg.Log.Level = strings.ToLower(v)
		return nil
	},
	EnvPrefix + "LOG_FORMAT": func(cfg *Config, v string) error {
		cfg.Log.Format = strings.ToLower(v)
		return nil
	},
}

// EnvVars returns the names of all recognized environment variables.
func EnvVars() []string {
	names := make([]string, 0, len(envMapping))
	for name := range envMapping {
		names = append(names, name)
	}
	return names
}

// ApplyEnv overrides cfg with any recognized variables found by lookup.
// Empty values are treated as unset.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for name, set := range envMapping {
		v, ok := lookup(name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if err := set(cfg, strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("env %s: %w", name, err)
		}
	}
	return nil
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}
