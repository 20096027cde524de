// Package cli implements the bucketplan command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/bucket-planner/internal/buildinfo"
	"github.com/rpgo/bucket-planner/internal/calculation"
)

type rootOptions struct {
	verbose bool
}

// logger returns a stderr logger when --verbose is set and a NopLogger otherwise.
func (o *rootOptions) logger(cmd *cobra.Command) calculation.Logger {
	if !o.verbose {
		return calculation.NopLogger{}
	}
	return newStreamLogger(cmd.ErrOrStderr())
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "bucketplan",
		Short:   "Project retirement income from a household's savings buckets",
		Version: fmt.Sprintf("%s (commit: %s)", buildinfo.Version, buildinfo.Commit),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log engine diagnostics to stderr")

	rootCmd.AddCommand(
		newCalculateCommand(opts),
		newCustomCommand(opts),
		newValidateCommand(),
		newExampleCommand(),
		newServeCommand(opts),
	)

	return rootCmd
}
