package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/bucket-planner/internal/calculation"
	"github.com/rpgo/bucket-planner/internal/config"
	"github.com/rpgo/bucket-planner/internal/domain"
	"github.com/rpgo/bucket-planner/internal/output"
)

type reportOptions struct {
	input  string
	format string
	out    string
}

func (o *reportOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.input, "input", "i", "", "portfolio file (yaml, json or toml)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVarP(&o.format, "format", "f", "console",
		fmt.Sprintf("output format (%s)", strings.Join(output.AvailableFormatterNames(), ", ")))
	cmd.Flags().StringVarP(&o.out, "output", "o", "", "write the report to a file instead of stdout")
}

func (o *reportOptions) formatter() (output.Formatter, error) {
	f := output.GetFormatterByName(o.format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q (use one of %s)", output.ErrUnsupportedFormat, o.format,
			strings.Join(output.AvailableFormatterNames(), ", "))
	}
	return f, nil
}

// emit formats report to stdout or, with --output, to a file.
func (o *reportOptions) emit(cmd *cobra.Command, report *output.Report) error {
	f, err := o.formatter()
	if err != nil {
		return err
	}
	if o.out != "" {
		path, err := output.WriteFormatted(f, report, o.out, output.Extension(f.Name()))
		if err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", path)
		return nil
	}
	return output.GenerateReport(cmd.OutOrStdout(), report, f.Name())
}

func loadPortfolio(path string) (*domain.Portfolio, error) {
	portfolio, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading portfolio: %w", err)
	}
	return portfolio, nil
}

func newCalculateCommand(root *rootOptions) *cobra.Command {
	var opts reportOptions
	var mode string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Project every bucket at its milestone ages",
		RunE: func(cmd *cobra.Command, args []string) error {
			contributionMode := domain.ContributionMode(strings.ToLower(mode))
			if !contributionMode.Valid() {
				return fmt.Errorf("invalid contribution mode %q (use %s or %s)", mode, domain.ContributionSingle, domain.ContributionDoubled)
			}
			if _, err := opts.formatter(); err != nil {
				return err
			}

			portfolio, err := loadPortfolio(opts.input)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			engine.ContributionMode = contributionMode
			engine.SetLogger(root.logger(cmd))

			result, err := engine.Calculate(portfolio)
			if err != nil {
				return fmt.Errorf("calculation failed: %w", err)
			}
			return opts.emit(cmd, &output.Report{Portfolio: portfolio, Result: result})
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&mode, "contribution-mode", string(domain.ContributionSingle),
		"how contributions enter milestone projections (single or doubled)")

	return cmd
}
