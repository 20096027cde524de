package config

import "github.com/shopspring/decimal"

// PersonInput is a loosely typed person as it appears in a portfolio file.
// Either Age or BirthDate (YYYY-MM-DD) must be present; Age wins when both are.
type PersonInput struct {
	Name      string           `json:"name" yaml:"name" toml:"name"`
	Age       *decimal.Decimal `json:"age,omitempty" yaml:"age,omitempty" toml:"age,omitempty"`
	BirthDate string           `json:"birth_date,omitempty" yaml:"birth_date,omitempty" toml:"birth_date,omitempty"`
}

// BucketInput is a loosely typed bucket. Nil numeric fields take defaults during normalization.
type BucketInput struct {
	ID                  string           `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Name                string           `json:"name" yaml:"name" toml:"name"`
	Category            string           `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Location            string           `json:"location,omitempty" yaml:"location,omitempty" toml:"location,omitempty"`
	Owner               string           `json:"owner,omitempty" yaml:"owner,omitempty" toml:"owner,omitempty"`
	CurrentValue        *decimal.Decimal `json:"current_value,omitempty" yaml:"current_value,omitempty" toml:"current_value,omitempty"`
	RealRate            *decimal.Decimal `json:"real_rate,omitempty" yaml:"real_rate,omitempty" toml:"real_rate,omitempty"`
	AccessAge           *decimal.Decimal `json:"access_age,omitempty" yaml:"access_age,omitempty" toml:"access_age,omitempty"`
	FullBenefitAge      *decimal.Decimal `json:"full_benefit_age,omitempty" yaml:"full_benefit_age,omitempty" toml:"full_benefit_age,omitempty"`
	MonthlyContribution *decimal.Decimal `json:"monthly_contribution,omitempty" yaml:"monthly_contribution,omitempty" toml:"monthly_contribution,omitempty"`
	ContributionEndAge  *decimal.Decimal `json:"contribution_end_age,omitempty" yaml:"contribution_end_age,omitempty" toml:"contribution_end_age,omitempty"`
	EarlyPenalty        *decimal.Decimal `json:"early_penalty,omitempty" yaml:"early_penalty,omitempty" toml:"early_penalty,omitempty"`
	Notes               string           `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
}

// PortfolioInput is the on-disk and over-the-wire shape of a household portfolio
type PortfolioInput struct {
	Person1             *PersonInput     `json:"person1" yaml:"person1" toml:"person1"`
	Person2             *PersonInput     `json:"person2" yaml:"person2" toml:"person2"`
	MonthlyExpenses     *decimal.Decimal `json:"monthly_expenses,omitempty" yaml:"monthly_expenses,omitempty" toml:"monthly_expenses,omitempty"`
	DefaultRealRate     *decimal.Decimal `json:"default_real_rate,omitempty" yaml:"default_real_rate,omitempty" toml:"default_real_rate,omitempty"`
	InflationAssumption *decimal.Decimal `json:"inflation_assumption,omitempty" yaml:"inflation_assumption,omitempty" toml:"inflation_assumption,omitempty"`
	Currency            string           `json:"currency,omitempty" yaml:"currency,omitempty" toml:"currency,omitempty"`
	Buckets             []BucketInput    `json:"buckets" yaml:"buckets" toml:"buckets"`
}

// Defaults applied to missing fields
var (
	DefaultRealRate           = decimal.NewFromFloat(2.0)
	DefaultAccessAge          = decimal.NewFromInt(65)
	DefaultFullBenefitAge     = decimal.NewFromInt(67)
	DefaultContributionEndAge = decimal.NewFromInt(65)
	DefaultCurrency           = "USD"
)
