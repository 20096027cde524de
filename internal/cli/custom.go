package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/bucket-planner/internal/calculation"
	"github.com/rpgo/bucket-planner/internal/config"
	"github.com/rpgo/bucket-planner/internal/domain"
	"github.com/rpgo/bucket-planner/internal/output"
)

func newCustomCommand(root *rootOptions) *cobra.Command {
	var opts reportOptions
	var age, period, rate float64
	var bucketID string

	cmd := &cobra.Command{
		Use:   "custom",
		Short: "Project buckets with a chosen disbursement age, period and rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.formatter(); err != nil {
				return err
			}
			params := domain.CustomParams{
				DisbursementAge:  decimal.NewFromFloat(age),
				WithdrawalPeriod: decimal.NewFromFloat(period),
				InterestRate:     decimal.NewFromFloat(rate),
			}
			parser := config.NewInputParser()
			if err := parser.ValidateCustomParams(params); err != nil {
				return fmt.Errorf("invalid custom parameters: %w", err)
			}

			portfolio, err := loadPortfolio(opts.input)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(root.logger(cmd))

			results, err := engine.CalculateCustom(portfolio, params, bucketID)
			if err != nil {
				return fmt.Errorf("custom projection failed: %w", err)
			}
			return opts.emit(cmd, &output.Report{Portfolio: portfolio, Custom: results})
		},
	}

	opts.register(cmd)
	cmd.Flags().Float64Var(&age, "age", 0, "disbursement start age")
	cmd.Flags().Float64Var(&period, "period", 0, "withdrawal period in years")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate in percent")
	cmd.Flags().StringVar(&bucketID, "bucket", "", "project only the bucket with this id")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("period")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}
