package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func dp(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// CreateExamplePortfolio creates an example household with one bucket of each common kind
func (ip *InputParser) CreateExamplePortfolio() *PortfolioInput {
	return &PortfolioInput{
		Person1:             &PersonInput{Name: "PersonA", Age: dp(58)},
		Person2:             &PersonInput{Name: "PersonB", Age: dp(56)},
		MonthlyExpenses:     dp(6500),
		DefaultRealRate:     dp(2.0),
		InflationAssumption: dp(2.5),
		Currency:            DefaultCurrency,
		Buckets: []BucketInput{
			{
				ID:                  "personA-401k",
				Name:                "PersonA 401k",
				Category:            "private",
				Location:            "Brokerage",
				Owner:               "person1",
				CurrentValue:        dp(400000),
				RealRate:            dp(3.0),
				AccessAge:           dp(59.5),
				FullBenefitAge:      dp(67),
				MonthlyContribution: dp(500),
				ContributionEndAge:  dp(65),
				EarlyPenalty:        dp(10),
				Notes:               "Employer match included in contribution",
			},
			{
				ID:             "personB-pension",
				Name:           "PersonB Pension",
				Category:       "public",
				Location:       "State retirement system",
				Owner:          "person2",
				CurrentValue:   dp(250000),
				RealRate:       dp(2.0),
				AccessAge:      dp(55),
				FullBenefitAge: dp(62),
				EarlyPenalty:   dp(6),
			},
			{
				ID:             "social-security",
				Name:           "Social Security",
				Category:       "public",
				Owner:          "joint",
				CurrentValue:   dp(300000),
				RealRate:       dp(0),
				AccessAge:      dp(62),
				FullBenefitAge: dp(67),
				EarlyPenalty:   dp(30),
			},
		},
	}
}

// SaveExample writes the example portfolio as YAML
func (ip *InputParser) SaveExample(filename string) error {
	data, err := yaml.Marshal(ip.CreateExamplePortfolio())
	if err != nil {
		return fmt.Errorf("failed to encode example: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
