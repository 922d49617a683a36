package utils

import (
	"github.com/shopspring/decimal"
)

// currencyPrefix is the committee's currency unit (Kuwaiti Dinar).
const currencyPrefix = "KD"

// kdPrecision is the display precision for KD amounts.
const kdPrecision = 2

// FormatKD renders a monetary amount in the fixed "KD {amount:.2f}" format the
// report and export collaborators consume.
// Example: FormatKD(decimal 12.3) returns "KD 12.30".
func FormatKD(amount decimal.Decimal) string {
	return currencyPrefix + " " + amount.StringFixed(kdPrecision)
}

// PercentOf returns part as a percentage of total, rounded to two decimals.
// Returns zero when total is zero so callers never divide by zero.
func PercentOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(kdPrecision)
}
