package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationResult is the structured outcome handed back to callers.
// Failure (unknown account, invalid input) is reported through Success and
// Message rather than a panic or a bare error, so the caller can surface a
// message without a crash path.
type ReconciliationResult struct {
	Success               bool            `json:"success"`
	Reconciliation        *Reconciliation `json:"reconciliation,omitempty"`
	AdjustmentTransaction *Transaction    `json:"adjustmentTransaction,omitempty"`
	Message               string          `json:"message"`
}

// Reconciliation is an append-only audit record of one reconciliation action
// against a bank account. It is created exactly once per action and never
// mutated afterwards.
//
// AdjustmentAmount is ActualBalance minus ExpectedBalance at ReconciledDate.
// AdjustmentTransactionID references the synthesized correcting transaction
// when one was requested, and is empty otherwise.
type Reconciliation struct {
	ReconciliationID        string          `json:"reconciliationID"` // Primary Key (e.g., UUID)
	AccountID               string          `json:"accountID"`        // FK -> BankAccount.accountID
	ReconciledDate          time.Time       `json:"reconciledDate"`
	ExpectedBalance         decimal.Decimal `json:"expectedBalance"`
	ActualBalance           decimal.Decimal `json:"actualBalance"`
	AdjustmentAmount        decimal.Decimal `json:"adjustmentAmount"`
	AdjustmentTransactionID string          `json:"adjustmentTransactionID,omitempty"`
	Notes                   string          `json:"notes"`
	CreatedAt               time.Time       `json:"createdAt"`
	CreatedBy               string          `json:"createdBy"`
}
