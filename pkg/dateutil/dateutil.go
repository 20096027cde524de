package dateutil

import (
	"time"

	"github.com/shopspring/decimal"
)

// Age calculates the whole-year age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// FractionalAge returns the age at atDate in years, with the partial year
// measured as the share of time elapsed since the last birthday. The result
// is rounded to two decimal places so that 58 and a half reads as 58.5.
func FractionalAge(birthDate, atDate time.Time) decimal.Decimal {
	if atDate.Before(birthDate) {
		return decimal.Zero
	}
	whole := Age(birthDate, atDate)
	last := birthDate.AddDate(whole, 0, 0)
	next := birthDate.AddDate(whole+1, 0, 0)
	span := next.Sub(last).Hours()
	if span <= 0 {
		return decimal.NewFromInt(int64(whole))
	}
	frac := atDate.Sub(last).Hours() / span
	return decimal.NewFromInt(int64(whole)).Add(decimal.NewFromFloat(frac)).Round(2)
}
