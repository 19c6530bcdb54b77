package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the kind of bank account being tracked.
type AccountType string

const (
	AccountChecking   AccountType = "CHECKING"
	AccountCreditCard AccountType = "CREDIT_CARD"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	return t == AccountChecking || t == AccountCreditCard
}

// BankAccount represents one imported bank account within a data context.
//
// Balance is a point-in-time snapshot anchored at BalanceDate, taken from the
// last imported statement. It is never advanced per-transaction; the expected
// balance at any later date is derived by projecting transactions forward
// from the snapshot.
type BankAccount struct {
	AccountID     string          `json:"accountID"` // Primary Key (e.g., UUID)
	ContextID     string          `json:"contextID"` // Owning data context (NON-NULL)
	Name          string          `json:"name"`      // User-defined name
	AccountType   AccountType     `json:"accountType"`
	CurrencyCode  string          `json:"currencyCode"`  // ISO code, e.g. "USD"
	Balance       decimal.Decimal `json:"balance"`       // Snapshot balance
	BalanceDate   time.Time       `json:"balanceDate"`   // Date the snapshot was taken
	AccountIDHash string          `json:"accountIDHash"` // Dedup key from the statement's account identity
	AuditFields
}
