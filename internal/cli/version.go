package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"boundcalc/internal/config"
)

// VersionInfo is the version payload for JSON output.
type VersionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the product label pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if rootOpts.Format == "json" {
				formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return formatter.Success(VersionInfo{Name: cfg.App.Name, Version: cfg.App.Version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.App.Name, cfg.App.Version)
			return nil
		},
	}
}
