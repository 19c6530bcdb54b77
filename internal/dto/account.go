package dto

import (
	"time"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a bank account.
type CreateAccountRequest struct {
	ContextID     string          `json:"contextID" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	AccountType   string          `json:"accountType" binding:"required,oneof=CHECKING CREDIT_CARD"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	Balance       decimal.Decimal `json:"balance"`
	BalanceDate   time.Time       `json:"balanceDate" binding:"required"`
	AccountIDHash string          `json:"accountIDHash" binding:"required"`
}

// UpdateAccountRequest defines the mutable fields of a bank account. Nil
// pointers leave the current value untouched.
type UpdateAccountRequest struct {
	Name        *string          `json:"name,omitempty"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	BalanceDate *time.Time       `json:"balanceDate,omitempty"`
}

// AccountResponse defines the data returned for a bank account.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	ContextID     string          `json:"contextID"`
	Name          string          `json:"name"`
	AccountType   string          `json:"accountType"`
	CurrencyCode  string          `json:"currencyCode"`
	Balance       decimal.Decimal `json:"balance"`
	BalanceDate   time.Time       `json:"balanceDate"`
	AccountIDHash string          `json:"accountIDHash"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain BankAccount to an AccountResponse DTO
func ToAccountResponse(a *domain.BankAccount) AccountResponse {
	return AccountResponse{
		AccountID:     a.AccountID,
		ContextID:     a.ContextID,
		Name:          a.Name,
		AccountType:   string(a.AccountType),
		CurrencyCode:  a.CurrencyCode,
		Balance:       a.Balance,
		BalanceDate:   a.BalanceDate,
		AccountIDHash: a.AccountIDHash,
		CreatedAt:     a.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain BankAccounts to DTOs
func ToListAccountResponse(accounts []domain.BankAccount) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		res[i] = ToAccountResponse(&a)
	}
	return res
}
