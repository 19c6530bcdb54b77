package mapping

import (
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Date:          d.Date,
		Amount:        d.Amount,
		Name:          d.Name,
		Memo:          d.Memo,
		Category:      string(d.Category),
		Subcategory:   d.Subcategory,
		IncomeType:    string(d.IncomeType),
		FiscalYear:    d.FiscalYear,
		ImportBatchID: d.ImportBatchID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Date:          m.Date,
		Amount:        m.Amount,
		Name:          m.Name,
		Memo:          m.Memo,
		Category:      domain.Category(m.Category),
		Subcategory:   m.Subcategory,
		IncomeType:    domain.IncomeType(m.IncomeType),
		FiscalYear:    m.FiscalYear,
		ImportBatchID: m.ImportBatchID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
