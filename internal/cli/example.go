package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/bucket-planner/internal/config"
)

func newExampleCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example portfolio file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.NewInputParser().SaveExample(out); err != nil {
				return fmt.Errorf("writing example: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example portfolio written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "example_portfolio.yaml", "destination file")

	return cmd
}
