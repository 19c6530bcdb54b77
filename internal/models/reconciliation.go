package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reconciliation is the database representation of one reconciliation audit
// record. Rows are insert-only.
type Reconciliation struct {
	ReconciliationID        string          `db:"reconciliation_id"`
	AccountID               string          `db:"account_id"`
	ReconciledDate          time.Time       `db:"reconciled_date"`
	ExpectedBalance         decimal.Decimal `db:"expected_balance"`
	ActualBalance           decimal.Decimal `db:"actual_balance"`
	AdjustmentAmount        decimal.Decimal `db:"adjustment_amount"`
	AdjustmentTransactionID string          `db:"adjustment_transaction_id"` // Nullable, stored as ''
	Notes                   string          `db:"notes"`
	CreatedAt               time.Time       `db:"created_at"`
	CreatedBy               string          `db:"created_by"`
}
