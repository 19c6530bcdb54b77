package dto

import (
	"time"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PerformReconciliationRequest confirms a bank-stated balance for an account
// on a date, optionally synthesizing a correcting adjustment transaction.
type PerformReconciliationRequest struct {
	ReconciledDate   time.Time       `json:"reconciledDate" binding:"required"`
	ActualBalance    decimal.Decimal `json:"actualBalance"`
	Notes            string          `json:"notes"`
	CreateAdjustment bool            `json:"createAdjustment"`
}

// ReconciliationResponse defines the data returned for one audit record.
type ReconciliationResponse struct {
	ReconciliationID        string          `json:"reconciliationID"`
	AccountID               string          `json:"accountID"`
	ReconciledDate          time.Time       `json:"reconciledDate"`
	ExpectedBalance         decimal.Decimal `json:"expectedBalance"`
	ActualBalance           decimal.Decimal `json:"actualBalance"`
	AdjustmentAmount        decimal.Decimal `json:"adjustmentAmount"`
	AdjustmentTransactionID string          `json:"adjustmentTransactionID,omitempty"`
	Notes                   string          `json:"notes,omitempty"`
	CreatedAt               time.Time       `json:"createdAt"`
}

// ReconciliationResultResponse is the outcome of a reconciliation action.
type ReconciliationResultResponse struct {
	Success               bool                    `json:"success"`
	Message               string                  `json:"message"`
	Reconciliation        *ReconciliationResponse `json:"reconciliation,omitempty"`
	AdjustmentTransaction *TransactionResponse    `json:"adjustmentTransaction,omitempty"`
}

// ExpectedBalanceResponse reports the projected balance for an account at a date.
type ExpectedBalanceResponse struct {
	AccountID       string          `json:"accountID"`
	AsOfDate        time.Time       `json:"asOfDate"`
	ExpectedBalance decimal.Decimal `json:"expectedBalance"`
}

// ToReconciliationResponse converts a domain Reconciliation to a DTO
func ToReconciliationResponse(r *domain.Reconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		ReconciliationID:        r.ReconciliationID,
		AccountID:               r.AccountID,
		ReconciledDate:          r.ReconciledDate,
		ExpectedBalance:         r.ExpectedBalance,
		ActualBalance:           r.ActualBalance,
		AdjustmentAmount:        r.AdjustmentAmount,
		AdjustmentTransactionID: r.AdjustmentTransactionID,
		Notes:                   r.Notes,
		CreatedAt:               r.CreatedAt,
	}
}

// ToListReconciliationResponse converts a slice of domain Reconciliations to DTOs
func ToListReconciliationResponse(recs []domain.Reconciliation) []ReconciliationResponse {
	res := make([]ReconciliationResponse, len(recs))
	for i, r := range recs {
		res[i] = ToReconciliationResponse(&r)
	}
	return res
}

// ToReconciliationResultResponse converts a domain ReconciliationResult to a DTO
func ToReconciliationResultResponse(r *domain.ReconciliationResult) ReconciliationResultResponse {
	resp := ReconciliationResultResponse{
		Success: r.Success,
		Message: r.Message,
	}
	if r.Reconciliation != nil {
		rec := ToReconciliationResponse(r.Reconciliation)
		resp.Reconciliation = &rec
	}
	if r.AdjustmentTransaction != nil {
		tx := ToTransactionResponse(r.AdjustmentTransaction)
		resp.AdjustmentTransaction = &tx
	}
	return resp
}
