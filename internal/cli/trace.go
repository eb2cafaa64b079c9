package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"boundcalc/internal/trace"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	RunToken string
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace <journal.db>",
		Short: "Print the journal of a run",
		Long: `Print the recorded steps of a journaled run.

Without --run, the most recent run is shown. JSON output is the canonical
snapshot form also used for golden comparison.

Example:
  boundcalc trace ./journal.db
  boundcalc trace ./journal.db --run 0192d3e0-...-01 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.RunToken, "run", "", "run token (defaults to the latest run)")

	return cmd
}

func runTrace(opts *TraceOptions, dbPath string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := trace.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open journal", err)
	}
	defer store.Close()

	token := opts.RunToken
	if token == "" {
		token, err = store.LatestRun(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "no runs in journal", err)
		}
	}

	snap, err := store.ReadSnapshot(ctx, token)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		data, err := snap.MarshalCanonical()
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to encode snapshot", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "run %s (%s %s, %s)\n", snap.RunToken, snap.App, snap.Version, snap.Platform)
	for _, step := range snap.Steps {
		fmt.Fprintf(out, "  seq=%d base=%d adjustment=%d result=%d counter=%d\n",
			step.Seq, step.Base, step.Adjustment, step.Result, step.CounterAfter)
	}
	return nil
}
