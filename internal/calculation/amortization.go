package calculation

import (
	"github.com/shopspring/decimal"

	dec "github.com/rpgo/bucket-planner/pkg/decimal"
)

// AmortizedPayment returns the level payment that fully retires principal
// over periods at periodicRate per period, compounding once per period.
//
// Fewer than one period means no amortization happens and the principal is
// returned as an immediate lump sum. A zero rate falls back to straight-line
// division. Periods may be fractional and principal may be negative; no
// input is rejected.
func AmortizedPayment(principal, periodicRate, periods decimal.Decimal) decimal.Decimal {
	if periods.LessThan(dec.One) {
		return principal
	}
	if periodicRate.IsZero() {
		return principal.Div(periods)
	}
	discount := dec.Pow(dec.One.Add(periodicRate), periods.Neg())
	return principal.Mul(periodicRate).Div(dec.One.Sub(discount))
}

// FutureValueOfContributions returns the future value of an ordinary annuity
// of annualContribution paid for years at annualRate. Non-positive rates
// accumulate the contributions without growth.
func FutureValueOfContributions(annualContribution, annualRate, years decimal.Decimal) decimal.Decimal {
	if annualRate.GreaterThan(decimal.Zero) {
		growth := dec.GrowthFactor(annualRate, years).Sub(dec.One)
		return annualContribution.Mul(growth).Div(annualRate)
	}
	return annualContribution.Mul(years)
}
