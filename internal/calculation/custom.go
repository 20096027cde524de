package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/bucket-planner/internal/domain"
	dec "github.com/rpgo/bucket-planner/pkg/decimal"
)

// ProjectCustom projects a bucket at a single caller-chosen disbursement age
// and amortizes the result monthly over the chosen withdrawal period at the
// chosen rate. A disbursement age at or before the owner's age is clamped to
// the owner's age, giving an immediate disbursement.
func ProjectCustom(b domain.Bucket, couple domain.Couple, params domain.CustomParams) (domain.CustomResult, error) {
	ownerAge, err := ResolveOwnerAge(b.Owner, couple)
	if err != nil {
		return domain.CustomResult{}, err
	}

	disbursementAge := params.DisbursementAge
	if disbursementAge.LessThanOrEqual(ownerAge) {
		disbursementAge = ownerAge
	}
	years := disbursementAge.Sub(ownerAge)

	rate := dec.FromPercent(params.InterestRate)
	value := projectedValue(b, ownerAge, years, rate, 1)

	months := params.WithdrawalPeriod.Mul(dec.Twelve)
	monthly := customMonthlyPayment(value, rate, months)
	monthly, applied, penaltyRate := applyEarlyPenalty(monthly, disbursementAge, b)

	return domain.CustomResult{
		Bucket: b,
		Projection: domain.ProjectionPoint{
			Age:            disbursementAge,
			YearsFromNow:   years,
			AccountValue:   value,
			MonthlyPayment: monthly,
			AnnualPayment:  monthly.Mul(dec.Twelve),
			PenaltyApplied: applied,
			PenaltyRate:    penaltyRate,
		},
		DisbursementAge:     disbursementAge,
		YearsToDisbursement: years,
		WithdrawalPeriod:    params.WithdrawalPeriod,
		InterestRateUsed:    params.InterestRate,
	}, nil
}

// customMonthlyPayment spreads value over months. A zero rate divides
// straight-line for any positive number of months; a zero period pays the
// value out at once.
func customMonthlyPayment(value, annualRate, months decimal.Decimal) decimal.Decimal {
	if annualRate.IsZero() {
		if months.IsZero() {
			return value
		}
		return value.Div(months)
	}
	return AmortizedPayment(value, annualRate.Div(dec.Twelve), months)
}
