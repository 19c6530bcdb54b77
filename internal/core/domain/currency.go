package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency in the domain.
//
// ExchangeRate is expressed as units of this currency per 1 USD (USD pivot).
// Rates are user-supplied and static until edited; there is no live feed.
type Currency struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string          `json:"symbol"`       // e.g., "$"
	Name         string          `json:"name"`         // e.g., "US Dollar"
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // Units per 1 USD
	AuditFields
}
