package repositories

import (
	"context"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves every transaction for one account,
	// ordered by date then creation time.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// ListTransactionsByContext retrieves every transaction across all
	// accounts of a data context, ordered by date then creation time.
	ListTransactionsByContext(ctx context.Context, contextID string) ([]domain.Transaction, error)

	// ListUncategorizedByContext retrieves the transactions still awaiting a
	// category within a context.
	ListUncategorizedByContext(ctx context.Context, contextID string) ([]domain.Transaction, error)

	// FindByImportKey retrieves a transaction by its statement import key
	// (account + FITID), used for import dedup.
	FindByImportKey(ctx context.Context, accountID, fitID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, tx domain.Transaction, fitID string) error

	// SaveTransactions persists a batch of new transactions atomically.
	SaveTransactions(ctx context.Context, txs []domain.Transaction, fitIDs []string) error

	// UpdateTransaction overwrites the mutable fields of an existing
	// transaction (category, subcategory, income type, fiscal year, memo).
	UpdateTransaction(ctx context.Context, tx domain.Transaction) error

	// UpdateTransactions overwrites a batch of existing transactions.
	UpdateTransactions(ctx context.Context, txs []domain.Transaction) error

	// DeleteTransaction removes a transaction permanently.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
