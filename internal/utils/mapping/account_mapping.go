package mapping

import (
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to a model BankAccount
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		AccountID:     d.AccountID,
		ContextID:     d.ContextID,
		Name:          d.Name,
		AccountType:   string(d.AccountType),
		CurrencyCode:  d.CurrencyCode,
		Balance:       d.Balance,
		BalanceDate:   d.BalanceDate,
		AccountIDHash: d.AccountIDHash,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		AccountID:     m.AccountID,
		ContextID:     m.ContextID,
		Name:          m.Name,
		AccountType:   domain.AccountType(m.AccountType),
		CurrencyCode:  m.CurrencyCode,
		Balance:       m.Balance,
		BalanceDate:   m.BalanceDate,
		AccountIDHash: m.AccountIDHash,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankAccountSlice converts a slice of model BankAccounts to domain BankAccounts
func ToDomainBankAccountSlice(ms []models.BankAccount) []domain.BankAccount {
	ds := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankAccount(m)
	}
	return ds
}
