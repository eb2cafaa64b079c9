package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"boundcalc/internal/bounds"
	"boundcalc/internal/compute"
	"boundcalc/internal/config"
	"boundcalc/internal/platform"
	"boundcalc/internal/stats"
	"boundcalc/internal/trace"
	"boundcalc/internal/vec"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	ConfigPath string
	TraceDB    string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one computation and report the result",
		Long: `Run the computation service once.

The service is wired from the configuration file (or built-in defaults),
initialized, and driven with the maximum of two fixed inputs. The result
line goes to standard output; the exit status is derived from the
descending comparator applied to the result and the instrumentation count.

Example:
  boundcalc run
  boundcalc run --config ./boundcalc.yaml --verbose
  boundcalc run --trace-db ./journal.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runService(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to YAML configuration (defaults used when omitted)")
	cmd.Flags().StringVar(&opts.TraceDB, "trace-db", "", "journal database path (enables the journal)")

	return cmd
}

func runService(opts *RunOptions, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevel,
	})))

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.TraceDB != "" {
		cfg.Trace.Enabled = true
		cfg.Trace.Database = opts.TraceDB
	}

	violations, err := config.Validate(cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to validate config", err)
	}
	if len(violations) > 0 {
		return WrapExitError(ExitCommandError, "invalid configuration", violations[0])
	}

	tag, err := platform.Resolve(cfg.Platform)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve platform", err)
	}
	mode, err := compute.ParseMode(cfg.Mode)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve mode", err)
	}
	slog.Debug("configuration resolved",
		"platform", tag, "stats", cfg.Stats, "bounds", cfg.Range(), "mode", mode)

	// Wire the service: one counter, one module, for the process lifetime.
	counter := stats.NewCounter(cfg.Stats)
	module := compute.New(counter, cfg.Range())
	if err := module.Initialize(mode); err != nil {
		return WrapExitError(ExitCommandError, "failed to initialize module", err)
	}

	// Auxiliary values: the base is the maximum of the two wired point
	// coordinates; the vector sum is display-only.
	base := bounds.Max(3, 4)
	sum := vec.Add(vec.Vec3{X: 1, Y: 2, Z: 3}, vec.Vec3{X: 4, Y: 5, Z: 6})

	result, err := module.Compute(base)
	if err != nil {
		return WrapExitError(ExitFailure, "compute failed", err)
	}
	count := counter.Read()
	slog.Debug("computed", "base", base, "result", result, "counter", count)

	if cfg.Trace.Enabled {
		if err := journalRun(cmd.Context(), cfg, tag, base, result, count); err != nil {
			return WrapExitError(ExitCommandError, "failed to journal run", err)
		}
	}

	formatter := platform.Formatter{App: cfg.App.Name, Version: cfg.App.Version, Tag: tag}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResult(result, sum))

	// Exit status contract: success only when the descending comparator of
	// (result, counter) is negative, i.e. counter < result.
	if status := compute.ExitStatus(compute.Descending, result, count); status != ExitSuccess {
		return NewExitError(ExitFailure, "counter did not stay below result under descending order")
	}
	return nil
}

// journalRun records the single step of this run in the journal database.
func journalRun(ctx context.Context, cfg config.Config, tag platform.Tag, base, result int, count int64) error {
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := trace.Open(cfg.Trace.Database)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("error closing journal", "error", closeErr)
		}
	}()

	rec, err := store.NewRecorder(ctx, cfg.App.Name, cfg.App.Version, string(tag))
	if err != nil {
		return err
	}
	slog.Debug("journaling run", "token", rec.Token())

	return rec.Record(ctx, trace.Step{
		Base:         base,
		Adjustment:   compute.AdjustmentConstant,
		Result:       result,
		CounterAfter: count,
	})
}
