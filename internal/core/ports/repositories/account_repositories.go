package repositories

import (
	"context"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
)

// AccountReader defines read operations for bank account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its id.
	FindAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)

	// FindAccountByHash retrieves an account by its statement identity hash,
	// used to dedup accounts across imports.
	FindAccountByHash(ctx context.Context, contextID, accountIDHash string) (*domain.BankAccount, error)

	// ListAccountsByContext retrieves all accounts of a data context.
	ListAccountsByContext(ctx context.Context, contextID string) ([]domain.BankAccount, error)
}

// AccountWriter defines write operations for bank account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.BankAccount) error

	// UpdateAccount overwrites an existing account (name, snapshot balance and date).
	UpdateAccount(ctx context.Context, account domain.BankAccount) error

	// DeleteAccount removes an account permanently.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
