package repositories

import (
	"context"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrency overwrites an existing currency (symbol, name, rate).
	UpdateCurrency(ctx context.Context, currency domain.Currency) error

	// DeleteCurrency removes a currency permanently.
	DeleteCurrency(ctx context.Context, currencyCode string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
