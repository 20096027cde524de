package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a portfolio file without projecting it",
		RunE: func(cmd *cobra.Command, args []string) error {
			portfolio, err := loadPortfolio(input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d bucket(s) for %s and %s\n",
				input, len(portfolio.Buckets), portfolio.Person1.Name, portfolio.Person2.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "portfolio file (yaml, json or toml)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
