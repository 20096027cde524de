package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	// Twelve is the number of months in a year.
	Twelve = decimal.NewFromInt(12)
	// Hundred converts between percentages and rates.
	Hundred = decimal.NewFromInt(100)
	// One is the multiplicative identity.
	One = decimal.NewFromInt(1)
)

// Pow raises base to a possibly fractional exponent.
// shopspring/decimal only handles integer exponents, so the factor is
// computed in float64 and converted back.
func Pow(base, exp decimal.Decimal) decimal.Decimal {
	if exp.IsZero() {
		return One
	}
	return decimal.NewFromFloat(math.Pow(base.InexactFloat64(), exp.InexactFloat64()))
}

// GrowthFactor returns (1+rate)^years.
func GrowthFactor(rate, years decimal.Decimal) decimal.Decimal {
	return Pow(One.Add(rate), years)
}

// FromPercent converts a percentage such as 3.0 into the rate 0.03.
func FromPercent(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(Hundred)
}

// Min returns the smaller of two values
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
