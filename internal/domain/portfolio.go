package domain

import (
	"github.com/shopspring/decimal"
)

// Owner identifies whose age drives a bucket's growth horizon
type Owner string

const (
	OwnerPerson1 Owner = "person1"
	OwnerPerson2 Owner = "person2"
	OwnerJoint   Owner = "joint"
)

// Valid reports whether o is one of the known owners
func (o Owner) Valid() bool {
	switch o {
	case OwnerPerson1, OwnerPerson2, OwnerJoint:
		return true
	}
	return false
}

// Category separates privately held accounts from public programs
type Category string

const (
	CategoryPrivate Category = "private"
	CategoryPublic  Category = "public"
)

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	return c == CategoryPrivate || c == CategoryPublic
}

// ContributionMode selects how the milestone projection folds in the
// future value of recurring contributions.
type ContributionMode string

const (
	// ContributionSingle adds the contribution annuity once.
	ContributionSingle ContributionMode = "single"
	// ContributionDoubled adds it twice, reproducing older reports.
	ContributionDoubled ContributionMode = "doubled"
)

// Valid reports whether m is a known contribution mode
func (m ContributionMode) Valid() bool {
	return m == ContributionSingle || m == ContributionDoubled
}

// Person is one member of the household
type Person struct {
	Name string          `json:"name" yaml:"name"`
	Age  decimal.Decimal `json:"age" yaml:"age"`
}

// Bucket is one retirement asset or income source with its own growth and payout rules.
// Rates and penalties are percentages (3.0 means 3%).
type Bucket struct {
	ID                  string          `json:"id" yaml:"id"`
	Name                string          `json:"name" yaml:"name"`
	Category            Category        `json:"category" yaml:"category"`
	Location            string          `json:"location" yaml:"location"`
	Owner               Owner           `json:"owner" yaml:"owner"`
	CurrentValue        decimal.Decimal `json:"current_value" yaml:"current_value"`
	RealRate            decimal.Decimal `json:"real_rate" yaml:"real_rate"`
	AccessAge           decimal.Decimal `json:"access_age" yaml:"access_age"`
	FullBenefitAge      decimal.Decimal `json:"full_benefit_age" yaml:"full_benefit_age"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution" yaml:"monthly_contribution"`
	ContributionEndAge  decimal.Decimal `json:"contribution_end_age" yaml:"contribution_end_age"`
	EarlyPenalty        decimal.Decimal `json:"early_penalty" yaml:"early_penalty"`
	Notes               string          `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Portfolio is the fully typed household description consumed by the engine.
// InflationAssumption is carried for display only and never enters the math.
type Portfolio struct {
	Person1             Person          `json:"person1" yaml:"person1"`
	Person2             Person          `json:"person2" yaml:"person2"`
	MonthlyExpenses     decimal.Decimal `json:"monthly_expenses" yaml:"monthly_expenses"`
	Buckets             []Bucket        `json:"buckets" yaml:"buckets"`
	DefaultRealRate     decimal.Decimal `json:"default_real_rate" yaml:"default_real_rate"`
	InflationAssumption decimal.Decimal `json:"inflation_assumption" yaml:"inflation_assumption"`
	Currency            string          `json:"currency" yaml:"currency"`
}

// Couple returns the two household members in order
func (p *Portfolio) Couple() Couple {
	return Couple{Person1: p.Person1, Person2: p.Person2}
}

// FindBucket returns the bucket with the given id
func (p *Portfolio) FindBucket(id string) (Bucket, bool) {
	for _, b := range p.Buckets {
		if b.ID == id {
			return b, true
		}
	}
	return Bucket{}, false
}

// Couple pairs the two people whose ages anchor every projection
type Couple struct {
	Person1 Person `json:"person1"`
	Person2 Person `json:"person2"`
}
