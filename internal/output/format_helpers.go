package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal with 2 decimals and a currency marker.
// USD and an empty currency render with a leading "$"; other codes are appended.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" || code == "USD" {
		return "$" + amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + code
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatAge drops trailing zeros so 59.50 prints as 59.5
func FormatAge(age decimal.Decimal) string { return age.Round(2).String() }

func boolToString(b bool) string { return strconv.FormatBool(b) }
