package services

import (
	"context"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/dto"
)

// AccountReaderSvc defines read operations for bank account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)

	// ListAccounts retrieves all accounts of a data context.
	ListAccounts(ctx context.Context, contextID string) ([]domain.BankAccount, error)
}

// AccountWriterSvc defines write operations for bank account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.BankAccount, error)

	// UpdateAccount applies the non-nil fields of req to an existing account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.BankAccount, error)

	// DeleteAccount removes an account permanently.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
