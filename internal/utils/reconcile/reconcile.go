// Package reconcile holds the pure balance math behind reconciliation:
// projecting an account's snapshot balance forward through its transactions
// and measuring the drift against a bank-confirmed figure.
package reconcile

import (
	"time"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpectedBalance projects the account's snapshot balance to asOfDate.
//
// When asOfDate is on or before the snapshot date the snapshot is returned
// unchanged: no transactions past the snapshot have been observed yet.
// Otherwise every transaction with snapshotDate < date <= asOfDate is added
// to the snapshot. The boundary is exclusive on the snapshot date and
// inclusive on asOfDate, which prevents double-counting the transaction that
// produced the snapshot.
func ExpectedBalance(account domain.BankAccount, txs []domain.Transaction, asOfDate time.Time) decimal.Decimal {
	snapshotDate := domain.DateOnly(account.BalanceDate)
	asOf := domain.DateOnly(asOfDate)
	if !asOf.After(snapshotDate) {
		return account.Balance
	}

	expected := account.Balance
	for _, tx := range txs {
		if tx.AccountID != account.AccountID {
			continue
		}
		d := domain.DateOnly(tx.Date)
		if d.After(snapshotDate) && !d.After(asOf) {
			expected = expected.Add(tx.Amount)
		}
	}
	return expected
}

// Discrepancy is the bank-confirmed balance minus the computed one. A
// positive result means the bank reports more money than the books.
func Discrepancy(actual, expected decimal.Decimal) decimal.Decimal {
	return actual.Sub(expected)
}

// NeedsReconciliation reports whether any drift exists at all.
func NeedsReconciliation(actual, expected decimal.Decimal) bool {
	return !actual.Sub(expected).IsZero()
}
