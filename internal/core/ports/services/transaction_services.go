package services

import (
	"context"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered page of a context's transactions.
	// Fiscal-year and date-range filters follow the fiscal resolver's
	// override semantics.
	ListTransactions(ctx context.Context, contextID string, req dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// ImportBatch ingests a parsed statement: upserts the account snapshot,
	// dedups transactions by FITID and stores the rest uncategorized.
	ImportBatch(ctx context.Context, req dto.ImportBatchRequest, importerUserID string) (*dto.ImportBatchResponse, error)

	// UpdateCategory applies a manual categorization edit.
	UpdateCategory(ctx context.Context, transactionID string, req dto.UpdateTransactionCategoryRequest, updaterUserID string) (*domain.Transaction, error)

	// SetFiscalYear assigns or clears the fiscal year override. The bank
	// date is never touched.
	SetFiscalYear(ctx context.Context, transactionID string, req dto.SetFiscalYearRequest, updaterUserID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction permanently (explicit user action only).
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
