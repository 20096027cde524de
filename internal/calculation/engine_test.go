package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/bucket-planner/internal/domain"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) record(level, format string, args ...any) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.record("DEBUG", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.record("INFO", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.record("WARN", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.record("ERROR", format, args...) }

func testPortfolio() *domain.Portfolio {
	pension := domain.Bucket{
		ID:                 "pension",
		Name:               "PersonB Pension",
		Category:           domain.CategoryPublic,
		Owner:              domain.OwnerPerson2,
		CurrentValue:       decimal.NewFromInt(250000),
		RealRate:           d(2.0),
		AccessAge:          decimal.NewFromInt(55),
		FullBenefitAge:     decimal.NewFromInt(60),
		ContributionEndAge: decimal.NewFromInt(65),
		EarlyPenalty:       decimal.NewFromInt(5),
	}
	joint := domain.Bucket{
		ID:                 "brokerage",
		Name:               "Joint Brokerage",
		Category:           domain.CategoryPrivate,
		Owner:              domain.OwnerJoint,
		CurrentValue:       decimal.NewFromInt(100000),
		RealRate:           d(4.0),
		AccessAge:          decimal.NewFromInt(60),
		FullBenefitAge:     decimal.NewFromInt(60),
		ContributionEndAge: decimal.NewFromInt(65),
	}
	return &domain.Portfolio{
		Person1:         domain.Person{Name: "PersonA", Age: decimal.NewFromInt(58)},
		Person2:         domain.Person{Name: "PersonB", Age: decimal.NewFromInt(62)},
		MonthlyExpenses: decimal.NewFromInt(6000),
		Buckets:         []domain.Bucket{scenarioBucket(), pension, joint},
		DefaultRealRate: d(2.0),
		Currency:        "USD",
	}
}

func TestNewCalculationEngine(t *testing.T) {
	ce := NewCalculationEngine()
	require.NotNil(t, ce)
	assert.Equal(t, domain.ContributionSingle, ce.ContributionMode)
	assert.IsType(t, NopLogger{}, ce.Logger)

	ce.SetLogger(nil)
	assert.IsType(t, NopLogger{}, ce.Logger)
}

func TestCalculate_PreservesOrderAndMatchesProjector(t *testing.T) {
	p := testPortfolio()
	ce := NewCalculationEngine()

	res, err := ce.Calculate(p)
	require.NoError(t, err)
	require.Len(t, res.BucketCalculations, 3)

	for i, b := range p.Buckets {
		assert.Equal(t, b.ID, res.BucketCalculations[i].Bucket.ID)
		direct, err := ProjectBucket(b, p.Couple(), domain.ContributionSingle)
		require.NoError(t, err)
		assert.Equal(t, direct.Calculations.Labels(), res.BucketCalculations[i].Calculations.Labels())
	}

	pension := res.BucketCalculations[1]
	assert.True(t, pension.OwnerAge.Equal(decimal.NewFromInt(62)))
	_, ok := pension.Calculations.Get(domain.LabelAccessAge)
	assert.False(t, ok, "access age 55 is before PersonB's age of 62")

	joint := res.BucketCalculations[2]
	assert.True(t, joint.OwnerAge.Equal(decimal.NewFromInt(58)))

	assert.Empty(t, res.Scenarios)
	assert.Empty(t, res.BreakevenAnalysis)
	assert.Empty(t, res.Recommendations)
	assert.NotNil(t, res.Scenarios)
	assert.Equal(t, domain.ContributionSingle, res.ContributionMode)
}

func TestCalculate_DoubledMode(t *testing.T) {
	p := testPortfolio()
	ce := NewCalculationEngine()
	single, err := ce.Calculate(p)
	require.NoError(t, err)

	ce.ContributionMode = domain.ContributionDoubled
	doubled, err := ce.Calculate(p)
	require.NoError(t, err)
	assert.Equal(t, domain.ContributionDoubled, doubled.ContributionMode)

	s, _ := single.BucketCalculations[0].Calculations.Get(domain.LabelAge70)
	dbl, _ := doubled.BucketCalculations[0].Calculations.Get(domain.LabelAge70)
	assert.True(t, dbl.AccountValue.GreaterThan(s.AccountValue))

	// buckets without contributions are unaffected
	sp, _ := single.BucketCalculations[1].Calculations.Get(domain.LabelAge70)
	dp, _ := doubled.BucketCalculations[1].Calculations.Get(domain.LabelAge70)
	assert.True(t, sp.AccountValue.Equal(dp.AccountValue))
}

func TestCalculate_InvalidModeFallsBackToSingle(t *testing.T) {
	ce := NewCalculationEngine()
	ce.ContributionMode = "triple"
	res, err := ce.Calculate(testPortfolio())
	require.NoError(t, err)
	assert.Equal(t, domain.ContributionSingle, res.ContributionMode)
}

func TestCalculate_Errors(t *testing.T) {
	ce := NewCalculationEngine()

	_, err := ce.Calculate(nil)
	assert.ErrorIs(t, err, ErrNilPortfolio)

	p := testPortfolio()
	p.Buckets[1].Owner = "nobody"
	_, err = ce.Calculate(p)
	assert.ErrorIs(t, err, ErrUnknownOwner)
	assert.Contains(t, err.Error(), "PersonB Pension")
}

func TestCalculate_Logging(t *testing.T) {
	log := &recordingLogger{}
	ce := NewCalculationEngine()
	ce.SetLogger(log)

	_, err := ce.Calculate(testPortfolio())
	require.NoError(t, err)

	joined := fmt.Sprint(log.lines)
	assert.Contains(t, joined, "projected 3 bucket(s) in single contribution mode")
	assert.Contains(t, joined, `bucket "PersonB Pension": 2 milestone(s)`)
	assert.Contains(t, joined, `bucket "PersonA 401k": access_age penalty of 10% applied`)
}

func TestCalculateCustom_AllBuckets(t *testing.T) {
	p := testPortfolio()
	ce := NewCalculationEngine()

	res, err := ce.CalculateCustom(p, customParams(60, 20, 3), "")
	require.NoError(t, err)
	require.Len(t, res.Results, 3)
	assert.True(t, res.Params.DisbursementAge.Equal(decimal.NewFromInt(60)))

	// PersonB is already 62, so the pension disburses immediately
	pension := res.Results[1]
	assert.True(t, pension.DisbursementAge.Equal(decimal.NewFromInt(62)))
	assert.True(t, pension.YearsToDisbursement.IsZero())

	total := decimal.Zero
	for _, r := range res.Results {
		total = total.Add(r.Projection.MonthlyPayment)
	}
	assert.True(t, res.TotalMonthlyPayment().Equal(total))
}

func TestCalculateCustom_SingleBucket(t *testing.T) {
	ce := NewCalculationEngine()

	res, err := ce.CalculateCustom(testPortfolio(), customParams(65, 25, 4), "brokerage")
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "brokerage", res.Results[0].Bucket.ID)

	_, err = ce.CalculateCustom(testPortfolio(), customParams(65, 25, 4), "missing")
	assert.ErrorIs(t, err, ErrBucketNotFound)

	_, err = ce.CalculateCustom(nil, customParams(65, 25, 4), "")
	assert.ErrorIs(t, err, ErrNilPortfolio)
}

func TestCalculateCustom_LogsClamping(t *testing.T) {
	log := &recordingLogger{}
	ce := NewCalculationEngine()
	ce.SetLogger(log)

	_, err := ce.CalculateCustom(testPortfolio(), customParams(60, 20, 3), "pension")
	require.NoError(t, err)
	assert.Contains(t, fmt.Sprint(log.lines), "disbursement age 60 clamped to owner age 62")
}
