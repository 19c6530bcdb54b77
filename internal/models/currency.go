package models

import "github.com/shopspring/decimal"

// Currency is the database representation of a supported currency.
// ExchangeRate is units of this currency per 1 USD.
type Currency struct {
	CurrencyCode string          `db:"currency_code"`
	Symbol       string          `db:"symbol"`
	Name         string          `db:"name"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"`
	AuditFields
}
