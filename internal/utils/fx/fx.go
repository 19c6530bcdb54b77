// Package fx converts monetary amounts between currencies through a USD
// pivot. Every rate is expressed as units of a currency per 1 USD; rates are
// user-supplied and static until edited.
package fx

import (
	"strings"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// builtinSymbols covers common currencies when the user has not configured
// one. Unknown codes fall back to the code itself.
var builtinSymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"KRW": "₩",
	"BRL": "R$",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "CHF",
	"MXN": "Mex$",
	"SGD": "S$",
	"HKD": "HK$",
	"THB": "฿",
	"VND": "₫",
	"PHP": "₱",
	"IDR": "Rp",
}

func findUser(code string, userCurrencies []domain.Currency) (domain.Currency, bool) {
	for _, c := range userCurrencies {
		if strings.EqualFold(c.CurrencyCode, code) {
			return c, true
		}
	}
	return domain.Currency{}, false
}

// SymbolFor returns the display symbol for a currency code. User-defined
// currencies take precedence over the built-in table; unknown codes return
// the code itself as its own symbol.
func SymbolFor(code string, userCurrencies []domain.Currency) string {
	if c, ok := findUser(code, userCurrencies); ok && c.Symbol != "" {
		return c.Symbol
	}
	if sym, ok := builtinSymbols[strings.ToUpper(code)]; ok {
		return sym
	}
	return code
}

// RateFor returns the units-per-USD rate for a currency code, defaulting to 1
// for unknown or unconfigured codes (and always 1 for USD).
func RateFor(code string, userCurrencies []domain.Currency) decimal.Decimal {
	if strings.EqualFold(code, "USD") {
		return decimal.NewFromInt(1)
	}
	if c, ok := findUser(code, userCurrencies); ok && c.ExchangeRate.IsPositive() {
		return c.ExchangeRate
	}
	return decimal.NewFromInt(1)
}

// Convert converts amount from one currency to another by pivoting through
// USD: amount * rateFrom / rateTo. Same-currency conversion is an exact
// identity, not a round trip through the rates, to avoid rounding noise on
// the common case. A zero target rate yields zero rather than an error.
func Convert(amount decimal.Decimal, fromCode, toCode string, userCurrencies []domain.Currency) decimal.Decimal {
	if strings.EqualFold(fromCode, toCode) {
		return amount
	}
	rateTo := RateFor(toCode, userCurrencies)
	if rateTo.IsZero() {
		return decimal.Zero
	}
	return ToUSD(amount, fromCode, userCurrencies).Div(rateTo)
}

// ToUSD converts an amount in the given currency to its USD-pivot value:
// amount * rateFor(code).
func ToUSD(amount decimal.Decimal, code string, userCurrencies []domain.Currency) decimal.Decimal {
	return amount.Mul(RateFor(code, userCurrencies))
}
