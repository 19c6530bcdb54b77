package dto

import (
	"time"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
// ExchangeRate is units of this currency per 1 USD.
type CreateCurrencyRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	Symbol       string          `json:"symbol" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// UpdateCurrencyRequest defines the mutable fields of a currency.
// Nil pointers leave the current value untouched.
type UpdateCurrencyRequest struct {
	Symbol       *string          `json:"symbol,omitempty"`
	Name         *string          `json:"name,omitempty"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string          `json:"currencyCode"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain Currency to a CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Symbol:        curr.Symbol,
		Name:          curr.Name,
		ExchangeRate:  curr.ExchangeRate,
		CreatedAt:     curr.CreatedAt,
		LastUpdatedAt: curr.LastUpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain Currencies to DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
