package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"boundcalc/internal/config"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                     `json:"valid"`
	Errors []config.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Validate a configuration file",
		Long: `Validate a YAML configuration file against the embedded schema.

Checks value domains (platform, mode), the bounds invariant low <= high,
and required fields without running the service. Faster than run for
configuration feedback.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	cfg, err := config.Load(path)
	if err != nil {
		if outErr := formatter.Error(ErrCodeNotFound, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	formatter.VerboseLog("Loaded %s", path)

	violations, err := config.Validate(cfg)
	if err != nil {
		if outErr := formatter.Error(ErrCodeGeneric, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "failed to validate config", err)
	}

	if len(violations) > 0 {
		if opts.Format == "json" {
			if err := formatter.Success(ValidationResult{Valid: false, Errors: violations}); err != nil {
				return err
			}
		} else {
			for _, v := range violations {
				if err := formatter.Error(ErrCodeConfigInvalid, v.Error(), nil); err != nil {
					return err
				}
			}
		}
		return NewExitError(ExitFailure, "configuration is invalid")
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
	return nil
}
