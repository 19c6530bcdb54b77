package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportedAccount is the account identity and opening balance snapshot the
// statement parser extracted from an uploaded file.
type ImportedAccount struct {
	AccountIDHash string          `json:"accountIDHash" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	AccountType   string          `json:"accountType" binding:"required,oneof=CHECKING CREDIT_CARD"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	Balance       decimal.Decimal `json:"balance"`
	BalanceDate   time.Time       `json:"balanceDate" binding:"required"`
}

// ImportedTransaction is one already-parsed statement line handed to the
// engine by the import collaborator. The engine never parses wire formats.
type ImportedTransaction struct {
	FitID       string          `json:"fitId" binding:"required"`
	DatePosted  time.Time       `json:"datePosted" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Name        string          `json:"name" binding:"required"`
	Memo        string          `json:"memo"`
	Type        string          `json:"type"`
	CheckNumber string          `json:"checkNumber"`
}

// ImportBatchRequest submits a parsed statement for ingestion.
type ImportBatchRequest struct {
	ContextID    string                `json:"contextID" binding:"required"`
	Account      ImportedAccount       `json:"account" binding:"required"`
	Transactions []ImportedTransaction `json:"transactions" binding:"required,dive"`
}

// ImportBatchResponse reports the outcome of one import run. Skipped counts
// transactions whose FITID was already present for the account.
type ImportBatchResponse struct {
	ImportBatchID string `json:"importBatchID"`
	AccountID     string `json:"accountID"`
	Imported      int    `json:"imported"`
	Skipped       int    `json:"skipped"`
}
