package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// ConsoleFormatter renders a per-bucket milestone table followed by the
// household coverage summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	cur := report.currency()

	fmt.Fprintln(&buf, "RETIREMENT BUCKET PROJECTION")
	fmt.Fprintln(&buf, "================================")
	if p := report.Portfolio; p != nil {
		fmt.Fprintf(&buf, "%s (age %s) and %s (age %s)\n", p.Person1.Name, FormatAge(p.Person1.Age), p.Person2.Name, FormatAge(p.Person2.Age))
		fmt.Fprintf(&buf, "Monthly expenses: %s\n", FormatCurrency(p.MonthlyExpenses, cur))
	}

	if report.Result != nil {
		c.writeMilestones(&buf, report)
	}
	if report.Custom != nil {
		c.writeCustom(&buf, report)
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeMilestones(buf *bytes.Buffer, report *Report) {
	cur := report.currency()
	for _, br := range report.Result.BucketCalculations {
		fmt.Fprintln(buf)
		fmt.Fprintf(buf, "%s [%s, %s] owner age %s, value %s at %s%%\n",
			br.Bucket.Name, br.Bucket.Category, br.Bucket.Owner, FormatAge(br.OwnerAge),
			FormatCurrency(br.Bucket.CurrentValue, cur), br.Bucket.RealRate.String())
		if len(br.Calculations) == 0 {
			fmt.Fprintln(buf, "  no milestones remain after the owner's current age")
			continue
		}
		tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "  Milestone\tAge\tYears\tAccount Value\tMonthly\tAnnual\tPenalty\t")
		for _, mp := range br.Calculations {
			p := mp.Point
			penalty := "-"
			if p.PenaltyApplied {
				penalty = FormatPercentage(p.PenaltyRate)
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
				mp.Label, FormatAge(p.Age), p.YearsFromNow.StringFixed(1),
				FormatCurrency(p.AccountValue, cur), FormatCurrency(p.MonthlyPayment, cur),
				FormatCurrency(p.AnnualPayment, cur), penalty)
		}
		tw.Flush()
	}

	if report.Portfolio == nil || len(report.Result.BucketCalculations) == 0 {
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "EXPENSE COVERAGE")
	fmt.Fprintln(buf, "--------------------------------")
	for _, mc := range CoverageByMilestone(report.Result, report.Portfolio.MonthlyExpenses) {
		fmt.Fprintf(buf, "%s: %s/month from %d bucket(s), %s\n", mc.Label, FormatCurrency(mc.TotalMonthly, cur), mc.Buckets, coverageText(mc))
	}
}

func (c ConsoleFormatter) writeCustom(buf *bytes.Buffer, report *Report) {
	cur := report.currency()
	params := report.Custom.Params
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "CUSTOM DISBURSEMENT: age %s, %s years at %s%%\n",
		FormatAge(params.DisbursementAge), params.WithdrawalPeriod.String(), params.InterestRate.String())
	fmt.Fprintln(buf, "--------------------------------")

	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "  Bucket\tStart Age\tYears\tAccount Value\tMonthly\tAnnual\tPenalty\t")
	for _, r := range report.Custom.Results {
		p := r.Projection
		penalty := "-"
		if p.PenaltyApplied {
			penalty = FormatPercentage(p.PenaltyRate)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Bucket.Name, FormatAge(r.DisbursementAge), r.YearsToDisbursement.StringFixed(1),
			FormatCurrency(p.AccountValue, cur), FormatCurrency(p.MonthlyPayment, cur),
			FormatCurrency(p.AnnualPayment, cur), penalty)
	}
	tw.Flush()

	if report.Portfolio != nil {
		mc := CustomCoverage(report.Custom, report.Portfolio.MonthlyExpenses)
		fmt.Fprintf(buf, "Total: %s/month, %s\n", FormatCurrency(mc.TotalMonthly, cur), coverageText(mc))
	}
}

func coverageText(mc MilestoneCoverage) string {
	if !mc.Available {
		return "coverage n/a"
	}
	return FormatPercentage(mc.CoveragePct) + " of expenses"
}
