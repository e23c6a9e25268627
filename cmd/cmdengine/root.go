package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/cmdengine/internal/config"
	"github.com/dshills/cmdengine/internal/logging"
)

// globalOptions are flags shared by all subcommands.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// env is the state built before any subcommand runs.
type env struct {
	cfg    config.Config
	logger *slog.Logger
}

func addGlobalFlags(fs *pflag.FlagSet, o *globalOptions) {
	fs.StringVarP(&o.configPath, "config", "c", "", "path to a .toml, .yaml, or .jsonc config file")
	fs.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&o.logFormat, "log-format", "", "log format (text, json)")
}

func newRootCmd() *cobra.Command {
	var opts globalOptions
	e := &env{}

	root := &cobra.Command{
		Use:           "cmdengine",
		Short:         "Command execution engine demos",
		Long:          "cmdengine runs undo/redo, macro, transaction, queue, and scripted command demos against mock receivers.",
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.Log.Level = opts.logLevel
			}
			if opts.logFormat != "" {
				cfg.Log.Format = opts.logFormat
			}

			logOpts := cfg.LoggingOptions()
			logOpts.Output = cmd.ErrOrStderr()
			logger, err := logging.New(logOpts)
			if err != nil {
				return err
			}

			e.cfg = cfg
			e.logger = logger
			return nil
		},
	}
	addGlobalFlags(root.PersistentFlags(), &opts)

	root.AddCommand(
		newEditorCmd(e),
		newRecordsCmd(e),
		newQueueCmd(e),
		newScriptCmd(e),
	)
	return root
}
