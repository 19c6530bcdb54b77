package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// All report math must survive degenerate inputs, so the functions here are
// total: bad input and zero divisors yield decimal zero plus a Diagnostic the
// caller can log or surface, never an error or a panic.

func init() {
	// Division keeps well past 20 significant digits before any display
	// rounding happens.
	if decimal.DivisionPrecision < 24 {
		decimal.DivisionPrecision = 24
	}
}

// Diagnostic describes an input that could not be used as a decimal value.
type Diagnostic struct {
	Input  string
	Reason string
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("invalid decimal %q: %s", d.Input, d.Reason)
}

// Parse converts a decimal string to a decimal.Decimal. Empty or unparsable
// input yields zero and a non-nil Diagnostic.
func Parse(input string) (decimal.Decimal, *Diagnostic) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return decimal.Zero, &Diagnostic{Input: input, Reason: "empty value"}
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, &Diagnostic{Input: input, Reason: err.Error()}
	}
	return d, nil
}

// ParseOrZero is Parse with the diagnostic discarded, for call sites that
// have already validated their input.
func ParseOrZero(input string) decimal.Decimal {
	d, _ := Parse(input)
	return d
}

// Divide returns a/b, or zero with a Diagnostic when b is zero.
func Divide(a, b decimal.Decimal) (decimal.Decimal, *Diagnostic) {
	if b.IsZero() {
		return decimal.Zero, &Diagnostic{Input: a.String(), Reason: "division by zero"}
	}
	return a.Div(b), nil
}

// PercentOf returns value as a percentage of total (value/total*100), or zero
// when total is zero.
func PercentOf(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Div(total).Mul(decimal.NewFromInt(100))
}

// ApplyRate applies a percentage rate to a value: ApplyRate(1000, 15) = 150.
func ApplyRate(value, ratePercent decimal.Decimal) decimal.Decimal {
	return value.Mul(ratePercent).Div(decimal.NewFromInt(100))
}

// Sum adds a slice of decimals.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// SumBy adds the amounts extracted from each item.
func SumBy[T any](items []T, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(amount(item))
	}
	return total
}

// GroupAndSum buckets items by key and sums each bucket's amounts. Every
// report is some variation of this.
func GroupAndSum[T any](items []T, key func(T) string, amount func(T) decimal.Decimal) map[string]decimal.Decimal {
	groups := make(map[string]decimal.Decimal)
	for _, item := range items {
		k := key(item)
		groups[k] = groups[k].Add(amount(item))
	}
	return groups
}
