package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is the database representation of an imported bank account.
// Balance/BalanceDate form the snapshot anchor for forward projections.
type BankAccount struct {
	AccountID     string          `db:"account_id"`
	ContextID     string          `db:"context_id"`
	Name          string          `db:"name"`
	AccountType   string          `db:"account_type"`
	CurrencyCode  string          `db:"currency_code"`
	Balance       decimal.Decimal `db:"balance"`
	BalanceDate   time.Time       `db:"balance_date"`
	AccountIDHash string          `db:"account_id_hash"`
	AuditFields
}
