package dto

import (
	"time"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/utils/fiscal"
	"github.com/shopspring/decimal"
)

// UpdateTransactionCategoryRequest defines a manual categorization edit.
type UpdateTransactionCategoryRequest struct {
	Category    string `json:"category" binding:"required,oneof=INCOME EXPENSE TRANSFER UNCATEGORIZED ADJUSTMENT"`
	Subcategory string `json:"subcategory"`
	IncomeType  string `json:"incomeType" binding:"omitempty,oneof=LOCAL FOREIGN"`
}

// SetFiscalYearRequest assigns or clears a transaction's fiscal year
// override. A nil FiscalYear clears the override.
type SetFiscalYearRequest struct {
	FiscalYear *int `json:"fiscalYear" binding:"omitempty,min=1900,max=2200"`
}

// ListTransactionsRequest carries the optional filters of a listing call.
type ListTransactionsRequest struct {
	AccountID  string `form:"accountID"`
	FiscalYear int    `form:"fiscalYear"`
	From       string `form:"from"` // ISO date
	To         string `form:"to"`   // ISO date
	Category   string `form:"category" binding:"omitempty,oneof=INCOME EXPENSE TRANSFER UNCATEGORIZED ADJUSTMENT"`
	Limit      int    `form:"limit,default=100" binding:"omitempty,min=1,max=500"`
	NextToken  string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
// FiscalYear is always populated with the effective reporting year;
// DateYear carries the raw bank-date year for display.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Name          string          `json:"name"`
	Memo          string          `json:"memo,omitempty"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	IncomeType    string          `json:"incomeType,omitempty"`
	FiscalYear    int             `json:"fiscalYear"`
	DateYear      int             `json:"dateYear"`
	HasOverride   bool            `json:"hasOverride"`
	ImportBatchID string          `json:"importBatchID,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of transactions with the cursor for
// the next page. NextToken is empty on the last page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		Date:          t.Date,
		Amount:        t.Amount,
		Name:          t.Name,
		Memo:          t.Memo,
		Category:      string(t.Category),
		Subcategory:   t.Subcategory,
		IncomeType:    string(t.IncomeType),
		FiscalYear:    fiscal.Year(*t),
		DateYear:      fiscal.DateYear(*t),
		HasOverride:   fiscal.HasOverride(*t),
		ImportBatchID: t.ImportBatchID,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain Transactions to DTOs
func ToListTransactionResponse(txs []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}
