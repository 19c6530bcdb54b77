package services

import (
	"context"
	"time"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ReconciliationSvc reconciles computed balances against bank-confirmed ones.
type ReconciliationSvc interface {
	// GetExpectedBalance projects the account snapshot forward to asOfDate.
	GetExpectedBalance(ctx context.Context, accountID string, asOfDate time.Time) (decimal.Decimal, error)

	// PerformReconciliation computes the discrepancy at the reconciled date,
	// optionally synthesizes a correcting adjustment transaction, and always
	// appends an audit record. A prior adjustment this engine created for
	// the same account and date is superseded, not stacked.
	PerformReconciliation(ctx context.Context, accountID string, req dto.PerformReconciliationRequest, userID string) (*domain.ReconciliationResult, error)

	// ListReconciliations retrieves an account's audit history, newest first.
	ListReconciliations(ctx context.Context, accountID string) ([]domain.Reconciliation, error)
}
