package repositories

import (
	"context"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
)

// ReconciliationReader defines read operations for reconciliation audit records
type ReconciliationReader interface {
	// ListReconciliationsByAccount retrieves an account's reconciliation
	// history, newest first.
	ListReconciliationsByAccount(ctx context.Context, accountID string) ([]domain.Reconciliation, error)
}

// ReconciliationWriter defines write operations for reconciliation audit records.
// Records are append-only; there is deliberately no update or delete.
type ReconciliationWriter interface {
	// SaveReconciliation persists a new audit record.
	SaveReconciliation(ctx context.Context, rec domain.Reconciliation) error
}

// ReconciliationRepositoryFacade combines all reconciliation repository interfaces
type ReconciliationRepositoryFacade interface {
	ReconciliationReader
	ReconciliationWriter
}
