package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbook/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithCurrencyReader wires a currency reader so account creation can verify
// the currency exists.
func WithCurrencyReader(reader portsrepo.CurrencyReader) AccountServiceOption {
	return func(s *accountService) {
		s.currencyRepo = reader
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{accountRepo: accountRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the service facade
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new bank account.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.BankAccount, error) {
	accountType := domain.AccountType(req.AccountType)
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type '%s'", apperrors.ErrValidation, req.AccountType)
	}

	if s.currencyRepo != nil {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
			s.LogDebug(ctx, "Account references unconfigured currency",
				slog.String("currency_code", req.CurrencyCode))
			// An unknown currency is not fatal: the converter treats it as
			// rate 1 with the code as its own symbol.
		}
	}

	// Dedup on the statement identity hash: re-importing a known account
	// must not create a sibling.
	if existing, err := s.accountRepo.FindAccountByHash(ctx, req.ContextID, req.AccountIDHash); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: account with identity hash '%s'", apperrors.ErrDuplicate, req.AccountIDHash)
	}

	now := time.Now()
	account := domain.BankAccount{
		AccountID:     uuid.NewString(),
		ContextID:     req.ContextID,
		Name:          req.Name,
		AccountType:   accountType,
		CurrencyCode:  req.CurrencyCode,
		Balance:       req.Balance,
		BalanceDate:   req.BalanceDate,
		AccountIDHash: req.AccountIDHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to create account",
			slog.String("context_id", req.ContextID))
		return nil, fmt.Errorf("failed to create account in service: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("context_id", account.ContextID))
	return &account, nil
}

// GetAccountByID retrieves a specific account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account in service: %w", err)
	}
	return account, nil
}

// ListAccounts retrieves all accounts of a data context.
func (s *accountService) ListAccounts(ctx context.Context, contextID string) ([]domain.BankAccount, error) {
	accounts, err := s.accountRepo.ListAccountsByContext(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts in service: %w", err)
	}
	return accounts, nil
}

// UpdateAccount applies the non-nil fields of req to an existing account.
// Only the name and the snapshot anchor are mutable; type, currency and
// identity hash are fixed at import time.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.BankAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account for update: %w", err)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}
	if req.BalanceDate != nil {
		account.BalanceDate = *req.BalanceDate
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = updaterUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account in service: %w", err)
	}
	return account, nil
}

// DeleteAccount removes an account permanently.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return fmt.Errorf("failed to delete account in service: %w", err)
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}
