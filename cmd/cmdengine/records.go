package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/cmdengine/internal/command"
	"github.com/dshills/cmdengine/internal/receiver/records"
)

type recordsOptions struct {
	seed         []string
	add          []string
	rollbackLast bool
}

func addRecordsFlags(fs *pflag.FlagSet, o *recordsOptions) {
	fs.StringSliceVar(&o.seed, "seed", nil, "records present before the demo")
	fs.StringSliceVar(&o.add, "add", []string{"Record 1", "Record 2", "Record 3"}, "records committed one transaction each")
	fs.BoolVar(&o.rollbackLast, "rollback-last", true, "roll back the last committed transaction")
}

func newRecordsCmd(e *env) *cobra.Command {
	var opts recordsOptions
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Transactional command demo against a record store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecords(cmd.OutOrStdout(), e, opts)
		},
	}
	addRecordsFlags(cmd.Flags(), &opts)
	return cmd
}

func runRecords(w io.Writer, e *env, opts recordsOptions) error {
	store := records.NewStore()
	for _, r := range opts.seed {
		if err := store.Add(r); err != nil {
			return err
		}
	}

	header(w, "Transactions")
	var committed []*command.Transaction
	for _, r := range opts.add {
		tx := command.NewTransaction(records.NewAddCommand(store, r))
		err := tx.Commit()
		var ce *command.CommitError
		switch {
		case err == nil:
			step(w, "committed %q", r)
			committed = append(committed, tx)
		case errors.As(err, &ce) && !ce.RolledBack():
			failure(w, "commit %q failed and rollback failed: %v", r, ce.Rollback)
			e.logger.Error("receiver may be inconsistent", "record", r, "error", err)
		default:
			failure(w, "commit %q failed: %v", r, err)
		}
	}
	printRecords(w, store)

	if opts.rollbackLast && len(committed) > 0 {
		tx := committed[len(committed)-1]
		step(w, "Rolling back %s", tx.Description())
		if err := tx.Rollback(); err != nil {
			return err
		}
		fmt.Fprintf(w, "state: %s\n", tx.State())
		printRecords(w, store)
	}
	return nil
}

func printRecords(w io.Writer, s *records.Store) {
	recs := s.Records()
	fmt.Fprintf(w, "Records (%d): %s\n", len(recs), strings.Join(recs, ", "))
}
