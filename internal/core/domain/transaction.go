package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a transaction for reporting purposes.
type Category string

const (
	CategoryIncome        Category = "INCOME"
	CategoryExpense       Category = "EXPENSE"
	CategoryTransfer      Category = "TRANSFER"
	CategoryUncategorized Category = "UNCATEGORIZED"
	CategoryAdjustment    Category = "ADJUSTMENT"
)

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryIncome, CategoryExpense, CategoryTransfer, CategoryUncategorized, CategoryAdjustment:
		return true
	}
	return false
}

// IncomeType distinguishes locally-taxed income from foreign income, which
// the profit and loss report taxes differently.
type IncomeType string

const (
	IncomeLocal   IncomeType = "LOCAL"
	IncomeForeign IncomeType = "FOREIGN"
)

// IsValid reports whether t is a known income type.
func (t IncomeType) IsValid() bool {
	return t == IncomeLocal || t == IncomeForeign
}

// Transaction is a single bank statement line. Amount is signed: positive is
// an inflow and negative an outflow, regardless of account currency.
//
// Date is the bank-posted date and is never mutated. FiscalYear, when
// non-nil, overrides the calendar year of Date for all reporting and
// filtering; the override never alters Date itself.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (e.g., UUID)
	AccountID     string          `json:"accountID"`     // FK -> BankAccount.accountID (Not Null)
	Date          time.Time       `json:"date"`          // Bank-posted date (Not Null)
	Amount        decimal.Decimal `json:"amount"`        // Signed; precise decimal type
	Name          string          `json:"name"`          // Payee / description from the statement
	Memo          string          `json:"memo"`          // Nullable
	Category      Category        `json:"category"`
	Subcategory   string          `json:"subcategory"` // Nullable
	IncomeType    IncomeType      `json:"incomeType,omitempty"`
	FiscalYear    *int            `json:"fiscalYear,omitempty"` // Reporting-year override
	ImportBatchID string          `json:"importBatchID"`        // Groups transactions by import run
	AuditFields
}

// IsUncategorized reports whether the transaction is still awaiting a
// category, i.e. eligible for mapping-rule application.
func (t Transaction) IsUncategorized() bool {
	return t.Category == CategoryUncategorized || t.Category == ""
}
