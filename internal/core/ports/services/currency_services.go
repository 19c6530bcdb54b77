package services

import (
	"context"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)

	// UpdateCurrency applies the non-nil fields of req to an existing
	// currency; updating ExchangeRate is how user-supplied rates change.
	UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error)

	// DeleteCurrency removes a currency permanently.
	DeleteCurrency(ctx context.Context, currencyCode string) error

	// EnsureDefaultCurrencies seeds the baseline currency set on startup.
	EnsureDefaultCurrencies(ctx context.Context) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
