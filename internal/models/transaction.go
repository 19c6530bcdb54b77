package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of a bank statement line.
// FiscalYear is nullable; NULL means the bank date's year is used.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	Date          time.Time       `db:"date"`
	Amount        decimal.Decimal `db:"amount"`
	Name          string          `db:"name"`
	Memo          string          `db:"memo"`
	Category      string          `db:"category"`
	Subcategory   string          `db:"subcategory"`
	IncomeType    string          `db:"income_type"` // Nullable, stored as ''
	FiscalYear    *int            `db:"fiscal_year"` // Nullable
	ImportBatchID string          `db:"import_batch_id"`
	AuditFields
}
