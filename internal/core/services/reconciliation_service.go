package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbook/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/finbook/bookkeeping_app/internal/utils/reconcile"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// reconciliationService implements the ReconciliationSvc interface
type reconciliationService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txRepo      portsrepo.TransactionRepositoryFacade
	reconRepo   portsrepo.ReconciliationRepositoryFacade
}

// NewReconciliationService creates a new reconciliation service.
func NewReconciliationService(accountRepo portsrepo.AccountRepositoryFacade, txRepo portsrepo.TransactionRepositoryFacade, reconRepo portsrepo.ReconciliationRepositoryFacade) portssvc.ReconciliationSvc {
	return &reconciliationService{accountRepo: accountRepo, txRepo: txRepo, reconRepo: reconRepo}
}

// Ensure reconciliationService implements the service interface
var _ portssvc.ReconciliationSvc = (*reconciliationService)(nil)

// GetExpectedBalance projects the account snapshot forward to asOfDate.
func (s *reconciliationService) GetExpectedBalance(ctx context.Context, accountID string, asOfDate time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find account for balance projection: %w", err)
	}

	txs, err := s.txRepo.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list transactions for balance projection: %w", err)
	}

	return reconcile.ExpectedBalance(*account, txs, asOfDate), nil
}

// adjustmentTransactionID is deterministic per account and date so re-running
// a reconciliation for the same day replaces the earlier correction instead
// of stacking a second one.
func adjustmentTransactionID(accountID string, reconciledDate time.Time) string {
	return fmt.Sprintf("adj-%s-%s", accountID, domain.DateOnly(reconciledDate).Format(time.DateOnly))
}

// PerformReconciliation compares the bank-confirmed balance against the
// projected one, optionally synthesizes a correcting adjustment transaction,
// and always appends an audit record. An unknown account produces a
// structured failure result rather than an error.
func (s *reconciliationService) PerformReconciliation(ctx context.Context, accountID string, req dto.PerformReconciliationRequest, userID string) (*domain.ReconciliationResult, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.ReconciliationResult{
				Success: false,
				Message: fmt.Sprintf("Account %s not found", accountID),
			}, nil
		}
		return nil, fmt.Errorf("failed to find account for reconciliation: %w", err)
	}

	// A re-run for the same account and date supersedes the earlier
	// correction, but only when this run may write a replacement. The
	// superseded adjustment is removed before projecting so the new
	// discrepancy is measured against uncorrected books. A report-only run
	// (no adjustment requested) leaves the prior correction in place and
	// measures the remaining drift on the corrected books.
	adjID := adjustmentTransactionID(accountID, req.ReconciledDate)
	if req.CreateAdjustment {
		if prior, err := s.txRepo.FindTransactionByID(ctx, adjID); err == nil && prior != nil && prior.Category == domain.CategoryAdjustment {
			if err := s.txRepo.DeleteTransaction(ctx, adjID); err != nil {
				return nil, fmt.Errorf("failed to supersede prior adjustment: %w", err)
			}
			s.LogInfo(ctx, "Superseded prior adjustment",
				slog.String("account_id", accountID),
				slog.String("transaction_id", adjID))
		}
	}

	txs, err := s.txRepo.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for reconciliation: %w", err)
	}

	expected := reconcile.ExpectedBalance(*account, txs, req.ReconciledDate)
	discrepancy := reconcile.Discrepancy(req.ActualBalance, expected)
	now := time.Now()

	rec := domain.Reconciliation{
		ReconciliationID: uuid.NewString(),
		AccountID:        accountID,
		ReconciledDate:   domain.DateOnly(req.ReconciledDate),
		ExpectedBalance:  expected,
		ActualBalance:    req.ActualBalance,
		AdjustmentAmount: discrepancy,
		Notes:            req.Notes,
		CreatedAt:        now,
		CreatedBy:        userID,
	}

	result := &domain.ReconciliationResult{Success: true}

	if discrepancy.IsZero() {
		result.Message = "Balance matches, no adjustment needed"
	} else if req.CreateAdjustment {
		adjTx := domain.Transaction{
			TransactionID: adjID,
			AccountID:     accountID,
			Date:          domain.DateOnly(req.ReconciledDate),
			Amount:        discrepancy,
			Name:          "Balance Adjustment",
			Memo:          fmt.Sprintf("Reconciliation adjustment as of %s", domain.DateOnly(req.ReconciledDate).Format(time.DateOnly)),
			Category:      domain.CategoryAdjustment,
			Subcategory:   "Reconciliation",
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if err := s.txRepo.SaveTransaction(ctx, adjTx, ""); err != nil {
			return nil, fmt.Errorf("failed to save adjustment transaction: %w", err)
		}
		rec.AdjustmentTransactionID = adjTx.TransactionID
		result.AdjustmentTransaction = &adjTx
		result.Message = fmt.Sprintf("Balance adjusted by %s", discrepancy.String())
	} else {
		result.Message = fmt.Sprintf("Discrepancy of %s found, no adjustment created", discrepancy.String())
	}

	if err := s.reconRepo.SaveReconciliation(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save reconciliation record: %w", err)
	}
	result.Reconciliation = &rec

	s.LogInfo(ctx, "Reconciliation performed",
		slog.String("account_id", accountID),
		slog.String("reconciliation_id", rec.ReconciliationID),
		slog.String("adjustment_amount", discrepancy.String()))

	return result, nil
}

// ListReconciliations retrieves an account's audit history, newest first.
func (s *reconciliationService) ListReconciliations(ctx context.Context, accountID string) ([]domain.Reconciliation, error) {
	recs, err := s.reconRepo.ListReconciliationsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reconciliations in service: %w", err)
	}
	return recs, nil
}
