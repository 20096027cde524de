package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rpgo/bucket-planner/internal/domain"
	dec "github.com/rpgo/bucket-planner/pkg/decimal"
)

// MilestoneWithdrawalYears is the payout horizon used for every milestone projection.
const MilestoneWithdrawalYears = 20

var (
	ErrUnknownOwner = errors.New("unknown bucket owner")
	ErrNilPortfolio = errors.New("portfolio is nil")
)

var (
	age70 = decimal.NewFromInt(70)
	age75 = decimal.NewFromInt(75)
	age80 = decimal.NewFromInt(80)
)

// ResolveOwnerAge returns the age that anchors a bucket's growth horizon.
// Joint buckets use the younger person's age.
func ResolveOwnerAge(owner domain.Owner, couple domain.Couple) (decimal.Decimal, error) {
	switch owner {
	case domain.OwnerPerson1:
		return couple.Person1.Age, nil
	case domain.OwnerPerson2:
		return couple.Person2.Age, nil
	case domain.OwnerJoint:
		return dec.Min(couple.Person1.Age, couple.Person2.Age), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownOwner, owner)
	}
}

type milestone struct {
	label string
	age   decimal.Decimal
}

// milestoneAges returns the fixed evaluation ages for a bucket in label order
func milestoneAges(b domain.Bucket) []milestone {
	return []milestone{
		{domain.LabelAccessAge, b.AccessAge},
		{domain.LabelFullBenefitAge, b.FullBenefitAge},
		{domain.LabelAge70, age70},
		{domain.LabelAge75, age75},
		{domain.LabelAge80, age80},
	}
}

// projectedValue grows the current balance to years from now and adds the
// future value of contributions made before the contribution end age.
// times is how many copies of the contribution annuity are added.
func projectedValue(b domain.Bucket, ownerAge, years, rate decimal.Decimal, times int) decimal.Decimal {
	value := b.CurrentValue.Mul(dec.GrowthFactor(rate, years))
	if !b.MonthlyContribution.GreaterThan(decimal.Zero) || !ownerAge.LessThan(b.ContributionEndAge) {
		return value
	}
	contributionYears := dec.Min(years, b.ContributionEndAge.Sub(ownerAge))
	fv := FutureValueOfContributions(b.MonthlyContribution.Mul(dec.Twelve), rate, contributionYears)
	for i := 0; i < times; i++ {
		value = value.Add(fv)
	}
	return value
}

// applyEarlyPenalty reduces payment when targetAge precedes the full benefit age.
// Only the full benefit age is consulted; the access age plays no part.
func applyEarlyPenalty(payment, targetAge decimal.Decimal, b domain.Bucket) (decimal.Decimal, bool, decimal.Decimal) {
	if targetAge.LessThan(b.FullBenefitAge) && b.EarlyPenalty.GreaterThan(decimal.Zero) {
		factor := dec.Hundred.Sub(b.EarlyPenalty).Div(dec.Hundred)
		return payment.Mul(factor), true, b.EarlyPenalty
	}
	return payment, false, decimal.Zero
}

// ProjectBucket projects a bucket at each milestone age later than the
// owner's current age. Milestones at or before the current age are omitted.
// Payments amortize the projected value over MilestoneWithdrawalYears at the
// bucket's real rate.
func ProjectBucket(b domain.Bucket, couple domain.Couple, mode domain.ContributionMode) (domain.BucketResult, error) {
	ownerAge, err := ResolveOwnerAge(b.Owner, couple)
	if err != nil {
		return domain.BucketResult{}, err
	}

	times := 1
	if mode == domain.ContributionDoubled {
		times = 2
	}

	rate := dec.FromPercent(b.RealRate)
	horizon := decimal.NewFromInt(MilestoneWithdrawalYears)
	calcs := make(domain.Milestones, 0, len(domain.MilestoneLabels))

	for _, m := range milestoneAges(b) {
		target := m.age
		if !target.GreaterThan(ownerAge) {
			continue
		}
		years := target.Sub(ownerAge)
		value := projectedValue(b, ownerAge, years, rate, times)
		monthly := AmortizedPayment(value, rate, horizon).Div(dec.Twelve)
		monthly, applied, penaltyRate := applyEarlyPenalty(monthly, target, b)

		calcs = append(calcs, domain.MilestoneProjection{
			Label: m.label,
			Point: domain.ProjectionPoint{
				Age:            target,
				YearsFromNow:   years,
				AccountValue:   value,
				MonthlyPayment: monthly,
				AnnualPayment:  monthly.Mul(dec.Twelve),
				PenaltyApplied: applied,
				PenaltyRate:    penaltyRate,
			},
		})
	}

	return domain.BucketResult{Bucket: b, OwnerAge: ownerAge, Calculations: calcs}, nil
}
