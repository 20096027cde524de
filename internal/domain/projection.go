package domain

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Milestone labels in evaluation order
const (
	LabelAccessAge      = "access_age"
	LabelFullBenefitAge = "full_benefit_age"
	LabelAge70          = "age_70"
	LabelAge75          = "age_75"
	LabelAge80          = "age_80"
)

// MilestoneLabels lists every milestone label in the order they are evaluated
var MilestoneLabels = []string{LabelAccessAge, LabelFullBenefitAge, LabelAge70, LabelAge75, LabelAge80}

// ProjectionPoint is the projected state of one bucket at one target age
type ProjectionPoint struct {
	Age            decimal.Decimal `json:"age"`
	YearsFromNow   decimal.Decimal `json:"years_from_now"`
	AccountValue   decimal.Decimal `json:"account_value"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	AnnualPayment  decimal.Decimal `json:"annual_payment"`
	PenaltyApplied bool            `json:"penalty_applied"`
	PenaltyRate    decimal.Decimal `json:"penalty_rate"`
}

// MilestoneProjection pairs a milestone label with its projection point
type MilestoneProjection struct {
	Label string
	Point ProjectionPoint
}

// Milestones is an ordered label -> point mapping. It serializes as a JSON
// object whose keys keep evaluation order.
type Milestones []MilestoneProjection

// Get returns the point stored under label
func (m Milestones) Get(label string) (ProjectionPoint, bool) {
	for _, mp := range m {
		if mp.Label == label {
			return mp.Point, true
		}
	}
	return ProjectionPoint{}, false
}

// Labels returns the labels present, in order
func (m Milestones) Labels() []string {
	labels := make([]string, 0, len(m))
	for _, mp := range m {
		labels = append(labels, mp.Label)
	}
	return labels
}

func (m Milestones) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mp := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mp.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(mp.Point)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BucketResult is the milestone projection set for one bucket
type BucketResult struct {
	Bucket       Bucket          `json:"bucket"`
	OwnerAge     decimal.Decimal `json:"owner_age"`
	Calculations Milestones      `json:"calculations"`
}

// PortfolioResult is the aggregate output of a portfolio calculation.
// Scenarios, BreakevenAnalysis and Recommendations are reserved and always empty.
type PortfolioResult struct {
	BucketCalculations []BucketResult   `json:"bucket_calculations"`
	Scenarios          []any            `json:"scenarios"`
	BreakevenAnalysis  []any            `json:"breakeven_analysis"`
	Recommendations    []string         `json:"recommendations"`
	ContributionMode   ContributionMode `json:"contribution_mode"`
}

// NewPortfolioResult returns a result with every list initialized, so the
// reserved fields serialize as [] rather than null.
func NewPortfolioResult(mode ContributionMode, capacity int) *PortfolioResult {
	return &PortfolioResult{
		BucketCalculations: make([]BucketResult, 0, capacity),
		Scenarios:          []any{},
		BreakevenAnalysis:  []any{},
		Recommendations:    []string{},
		ContributionMode:   mode,
	}
}

// CustomParams are the user overrides for a custom projection.
// InterestRate is a percentage.
type CustomParams struct {
	DisbursementAge  decimal.Decimal `json:"disbursement_age"`
	WithdrawalPeriod decimal.Decimal `json:"withdrawal_period"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
}

// CustomResult is a single-age projection for one bucket together with the
// parameters actually used (the disbursement age may have been clamped).
type CustomResult struct {
	Bucket              Bucket          `json:"bucket"`
	Projection          ProjectionPoint `json:"projection"`
	DisbursementAge     decimal.Decimal `json:"disbursement_age"`
	YearsToDisbursement decimal.Decimal `json:"years_to_disbursement"`
	WithdrawalPeriod    decimal.Decimal `json:"withdrawal_period"`
	InterestRateUsed    decimal.Decimal `json:"interest_rate_used"`
}

// CustomResults collects custom projections across a portfolio
type CustomResults struct {
	Params  CustomParams   `json:"params"`
	Results []CustomResult `json:"results"`
}

// TotalMonthlyPayment sums the monthly payment of every custom result
func (cr *CustomResults) TotalMonthlyPayment() decimal.Decimal {
	total := decimal.Zero
	for _, r := range cr.Results {
		total = total.Add(r.Projection.MonthlyPayment)
	}
	return total
}
