package money

import (
	"github.com/shopspring/decimal"
)

// Formatting is a presentation concern only; it never changes the underlying
// value. Rounding happens here and nowhere else: StringFixed rounds half away
// from zero, which is round-half-up for the positive magnitudes shown in
// reports.

// ToFixed renders v with exactly places decimal places.
func ToFixed(v decimal.Decimal, places int32) string {
	return v.StringFixed(places)
}

// FormatWithSymbol renders v to two decimal places with a currency symbol
// prefix, e.g. "$1234.50". Negative values keep the sign before the symbol.
func FormatWithSymbol(v decimal.Decimal, symbol string) string {
	if v.IsNegative() {
		return "-" + symbol + v.Abs().StringFixed(2)
	}
	return symbol + v.StringFixed(2)
}

// FormatPercent renders v with one decimal place and a trailing percent sign.
func FormatPercent(v decimal.Decimal) string {
	return v.StringFixed(1) + "%"
}

// FormatWhole renders v rounded to a whole number.
func FormatWhole(v decimal.Decimal) string {
	return v.StringFixed(0)
}
