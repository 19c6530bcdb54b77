package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbook/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyService provides business logic for currencies and their
// user-supplied exchange rates.
type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// Ensure CurrencyService implements the service facade
var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// CreateCurrency handles the creation of a new currency.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	// Basic format validation is handled by DTO binding tags.
	if req.ExchangeRate.IsNegative() {
		return nil, fmt.Errorf("%w: exchange rate cannot be negative", apperrors.ErrValidation)
	}

	if existing, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: currency '%s'", apperrors.ErrDuplicate, req.CurrencyCode)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing currency: %w", err)
	}

	rate := req.ExchangeRate
	if rate.IsZero() {
		// Unconfigured rates default to parity with USD.
		rate = decimal.NewFromInt(1)
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		ExchangeRate: rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to create currency")
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return &currency, nil
}

// GetCurrencyByCode retrieves a specific currency by its 3-letter code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currencyCode = strings.ToUpper(currencyCode)
	if len(currencyCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		// Repository layer handles ErrNotFound mapping
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all available currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	return currencies, nil
}

// UpdateCurrency applies the non-nil fields of req to an existing currency.
func (s *CurrencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error) {
	currency, err := s.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, err
	}

	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.ExchangeRate != nil {
		if req.ExchangeRate.IsNegative() || req.ExchangeRate.IsZero() {
			return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
		currency.ExchangeRate = *req.ExchangeRate
	}
	currency.LastUpdatedAt = time.Now()
	currency.LastUpdatedBy = updaterUserID

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		s.LogError(ctx, err, "Failed to update currency")
		return nil, fmt.Errorf("failed to update currency in service: %w", err)
	}
	return currency, nil
}

// DeleteCurrency removes a currency permanently.
func (s *CurrencyService) DeleteCurrency(ctx context.Context, currencyCode string) error {
	if err := s.currencyRepo.DeleteCurrency(ctx, strings.ToUpper(currencyCode)); err != nil {
		return fmt.Errorf("failed to delete currency in service: %w", err)
	}
	return nil
}

// EnsureDefaultCurrencies seeds USD so a fresh installation always has the
// pivot currency available. Existing rows are left untouched.
func (s *CurrencyService) EnsureDefaultCurrencies(ctx context.Context) error {
	_, err := s.currencyRepo.FindCurrencyByCode(ctx, "USD")
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check for USD currency: %w", err)
	}

	now := time.Now()
	usd := domain.Currency{
		CurrencyCode: "USD",
		Symbol:       "$",
		Name:         "US Dollar",
		ExchangeRate: decimal.NewFromInt(1),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if err := s.currencyRepo.SaveCurrency(ctx, usd); err != nil {
		return fmt.Errorf("failed to seed USD currency: %w", err)
	}
	s.LogInfo(ctx, "Seeded default USD currency")
	return nil
}
