// Package fiscal decides which calendar year a transaction counts toward for
// reporting, independent of its bank-posted date. A user-assigned fiscal year
// override lets a payment received in January be attributed to the prior
// year's books (or a December prepayment deferred to the next) without ever
// altering the transaction's true bank date.
package fiscal

import (
	"sort"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
)

// Year returns the reporting year for a transaction: the fiscal year
// override when present, otherwise the calendar year of the bank date.
func Year(tx domain.Transaction) int {
	if tx.FiscalYear != nil {
		return *tx.FiscalYear
	}
	return tx.Date.Year()
}

// DateYear returns the calendar year of the bank-posted date, ignoring any
// override. Used to display the "true" statement year.
func DateYear(tx domain.Transaction) int {
	return tx.Date.Year()
}

// HasOverride reports whether a fiscal year override is set.
func HasOverride(tx domain.Transaction) bool {
	return tx.FiscalYear != nil
}

// OverrideEffective reports whether an override is set and actually moves the
// transaction to a different year than its bank date.
func OverrideEffective(tx domain.Transaction) bool {
	return tx.FiscalYear != nil && *tx.FiscalYear != tx.Date.Year()
}

// FilterByYear returns the transactions whose reporting year equals year.
func FilterByYear(txs []domain.Transaction, year int) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		if Year(tx) == year {
			out = append(out, tx)
		}
	}
	return out
}

// FilterByDateRange selects transactions for a reporting period.
//
// For a range within one calendar year Y: a transaction is included when its
// reporting year is Y and, if it carries no override, its raw date also falls
// inside the range. Sub-year ranges (a quarter, a month) therefore still
// exclude non-override transactions outside the window, while an override
// wins regardless of where in the year the window sits.
//
// For a multi-year range: a transaction is included when its reporting year
// lies within [start year, end year]; non-override transactions are further
// constrained to the literal date range, override transactions are included
// unconditionally once their year qualifies.
func FilterByDateRange(txs []domain.Transaction, r domain.DateRange) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txs))
	if r.SingleYear() {
		year := r.Start.Year()
		for _, tx := range txs {
			if Year(tx) != year {
				continue
			}
			if !HasOverride(tx) && !r.Contains(tx.Date) {
				continue
			}
			out = append(out, tx)
		}
		return out
	}

	startYear, endYear := r.Start.Year(), r.End.Year()
	for _, tx := range txs {
		y := Year(tx)
		if y < startYear || y > endYear {
			continue
		}
		if !HasOverride(tx) && !r.Contains(tx.Date) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// UniqueYears returns every reporting year present in txs, newest first.
func UniqueYears(txs []domain.Transaction) []int {
	seen := make(map[int]struct{})
	for _, tx := range txs {
		seen[Year(tx)] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// GroupByYear buckets transactions by reporting year.
func GroupByYear(txs []domain.Transaction) map[int][]domain.Transaction {
	groups := make(map[int][]domain.Transaction)
	for _, tx := range txs {
		y := Year(tx)
		groups[y] = append(groups[y], tx)
	}
	return groups
}
