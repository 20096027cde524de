package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/bucket-planner/internal/domain"
)

// ErrBucketNotFound is returned when a custom projection targets an unknown bucket id.
var ErrBucketNotFound = errors.New("bucket not found")

// CalculationEngine fans the projectors out over a portfolio. It holds no
// per-call state, so one engine may serve concurrent requests.
type CalculationEngine struct {
	ContributionMode domain.ContributionMode
	Logger           Logger
}

// NewCalculationEngine creates an engine that applies contributions once
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		ContributionMode: domain.ContributionSingle,
		Logger:           NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) mode() domain.ContributionMode {
	if ce.ContributionMode.Valid() {
		return ce.ContributionMode
	}
	return domain.ContributionSingle
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// Calculate projects every bucket at the milestone ages, preserving bucket order.
func (ce *CalculationEngine) Calculate(portfolio *domain.Portfolio) (*domain.PortfolioResult, error) {
	if portfolio == nil {
		return nil, ErrNilPortfolio
	}
	mode := ce.mode()
	log := ce.logger()
	couple := portfolio.Couple()

	result := domain.NewPortfolioResult(mode, len(portfolio.Buckets))
	for _, b := range portfolio.Buckets {
		br, err := ProjectBucket(b, couple, mode)
		if err != nil {
			return nil, fmt.Errorf("bucket %q: %w", b.Name, err)
		}
		if skipped := len(domain.MilestoneLabels) - len(br.Calculations); skipped > 0 {
			log.Debugf("bucket %q: %d milestone(s) at or before owner age %s skipped", b.Name, skipped, br.OwnerAge)
		}
		for _, mp := range br.Calculations {
			if mp.Point.PenaltyApplied {
				log.Debugf("bucket %q: %s penalty of %s%% applied at age %s", b.Name, mp.Label, mp.Point.PenaltyRate, mp.Point.Age)
			}
		}
		result.BucketCalculations = append(result.BucketCalculations, br)
	}

	log.Infof("projected %d bucket(s) in %s contribution mode", len(result.BucketCalculations), mode)
	return result, nil
}

// CalculateCustom applies the custom projection to every bucket, or only to
// the bucket with bucketID when it is non-empty.
func (ce *CalculationEngine) CalculateCustom(portfolio *domain.Portfolio, params domain.CustomParams, bucketID string) (*domain.CustomResults, error) {
	if portfolio == nil {
		return nil, ErrNilPortfolio
	}
	log := ce.logger()
	couple := portfolio.Couple()

	buckets := portfolio.Buckets
	if bucketID != "" {
		b, ok := portfolio.FindBucket(bucketID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucketID)
		}
		buckets = []domain.Bucket{b}
	}

	results := &domain.CustomResults{Params: params, Results: make([]domain.CustomResult, 0, len(buckets))}
	for _, b := range buckets {
		cr, err := ProjectCustom(b, couple, params)
		if err != nil {
			return nil, fmt.Errorf("bucket %q: %w", b.Name, err)
		}
		if !cr.DisbursementAge.Equal(params.DisbursementAge) {
			log.Debugf("bucket %q: disbursement age %s clamped to owner age %s", b.Name, params.DisbursementAge, cr.DisbursementAge)
		}
		results.Results = append(results.Results, cr)
	}

	log.Infof("custom projection for %d bucket(s) at age %s over %s years", len(results.Results), params.DisbursementAge, params.WithdrawalPeriod)
	return results, nil
}
