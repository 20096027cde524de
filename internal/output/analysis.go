package output

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/bucket-planner/internal/domain"
	dec "github.com/rpgo/bucket-planner/pkg/decimal"
)

// MilestoneCoverage is the household's combined monthly payout at one
// milestone label compared to monthly expenses.
type MilestoneCoverage struct {
	Label        string          `json:"label"`
	TotalMonthly decimal.Decimal `json:"total_monthly"`
	Buckets      int             `json:"buckets"`
	// CoveragePct is meaningful only when Available is true; expenses of zero
	// or less leave coverage undefined.
	CoveragePct decimal.Decimal `json:"coverage_pct"`
	Available   bool            `json:"available"`
}

func coverage(total, expenses decimal.Decimal) (decimal.Decimal, bool) {
	if !expenses.IsPositive() {
		return decimal.Zero, false
	}
	return total.Div(expenses).Mul(dec.Hundred), true
}

// CoverageByMilestone sums monthly payments across buckets for each milestone
// label that at least one bucket reports, in milestone order.
func CoverageByMilestone(result *domain.PortfolioResult, monthlyExpenses decimal.Decimal) []MilestoneCoverage {
	if result == nil {
		return nil
	}
	out := make([]MilestoneCoverage, 0, len(domain.MilestoneLabels))
	for _, label := range domain.MilestoneLabels {
		mc := MilestoneCoverage{Label: label, TotalMonthly: decimal.Zero}
		for _, br := range result.BucketCalculations {
			if p, ok := br.Calculations.Get(label); ok {
				mc.TotalMonthly = mc.TotalMonthly.Add(p.MonthlyPayment)
				mc.Buckets++
			}
		}
		if mc.Buckets == 0 {
			continue
		}
		mc.CoveragePct, mc.Available = coverage(mc.TotalMonthly, monthlyExpenses)
		out = append(out, mc)
	}
	return out
}

// CustomCoverage is the coverage of the combined custom-mode payout
func CustomCoverage(custom *domain.CustomResults, monthlyExpenses decimal.Decimal) MilestoneCoverage {
	mc := MilestoneCoverage{Label: "custom", TotalMonthly: decimal.Zero}
	if custom == nil {
		return mc
	}
	mc.TotalMonthly = custom.TotalMonthlyPayment()
	mc.Buckets = len(custom.Results)
	mc.CoveragePct, mc.Available = coverage(mc.TotalMonthly, monthlyExpenses)
	return mc
}
