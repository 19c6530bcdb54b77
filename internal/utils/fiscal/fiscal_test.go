package fiscal_test

import (
	"testing"
	"time"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/utils/fiscal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func txOn(date string, fiscalYear *int) domain.Transaction {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return domain.Transaction{Date: d, FiscalYear: fiscalYear}
}

func TestYear(t *testing.T) {
	tests := []struct {
		name string
		tx   domain.Transaction
		want int
	}{
		{name: "no override uses bank date year", tx: txOn("2025-06-15", nil), want: 2025},
		{name: "override wins over bank date", tx: txOn("2026-01-15", intPtr(2025)), want: 2025},
		{name: "override equal to date year", tx: txOn("2025-03-01", intPtr(2025)), want: 2025},
		{name: "december deferred to next year", tx: txOn("2025-12-30", intPtr(2026)), want: 2026},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fiscal.Year(tt.tx))
		})
	}
}

func TestDateYear_IgnoresOverride(t *testing.T) {
	tx := txOn("2026-01-15", intPtr(2025))
	assert.Equal(t, 2026, fiscal.DateYear(tx))
}

func TestOverrideEffective(t *testing.T) {
	assert.False(t, fiscal.OverrideEffective(txOn("2025-06-15", nil)))
	assert.False(t, fiscal.OverrideEffective(txOn("2025-06-15", intPtr(2025))))
	assert.True(t, fiscal.OverrideEffective(txOn("2026-01-15", intPtr(2025))))
}

func TestFilterByYear(t *testing.T) {
	txs := []domain.Transaction{
		txOn("2025-03-01", nil),
		txOn("2026-01-15", intPtr(2025)), // January payment booked to prior year
		txOn("2026-02-01", nil),
		txOn("2025-12-30", intPtr(2026)), // December prepayment deferred
	}

	got2025 := fiscal.FilterByYear(txs, 2025)
	require.Len(t, got2025, 2)
	assert.Equal(t, txs[0], got2025[0])
	assert.Equal(t, txs[1], got2025[1])

	got2026 := fiscal.FilterByYear(txs, 2026)
	require.Len(t, got2026, 2)
	assert.Equal(t, txs[2], got2026[0])
	assert.Equal(t, txs[3], got2026[1])

	assert.Empty(t, fiscal.FilterByYear(txs, 2024))
}

func dateRange(start, end string) domain.DateRange {
	s, err := time.Parse(time.DateOnly, start)
	if err != nil {
		panic(err)
	}
	e, err := time.Parse(time.DateOnly, end)
	if err != nil {
		panic(err)
	}
	return domain.DateRange{Start: s, End: e}
}

func TestFilterByDateRange_FullYear(t *testing.T) {
	r := dateRange("2025-01-01", "2025-12-31")
	txs := []domain.Transaction{
		txOn("2025-06-15", nil),          // inside, no override
		txOn("2026-01-15", intPtr(2025)), // outside range but override pulls it in
		txOn("2025-12-30", intPtr(2026)), // inside range but override pushes it out
		txOn("2024-12-31", nil),          // outside
	}

	got := fiscal.FilterByDateRange(txs, r)
	require.Len(t, got, 2)
	assert.Equal(t, txs[0], got[0])
	assert.Equal(t, txs[1], got[1])
}

func TestFilterByDateRange_SubYearWindow(t *testing.T) {
	// First quarter: non-override transactions outside the window are
	// excluded even though their year matches.
	r := dateRange("2025-01-01", "2025-03-31")
	txs := []domain.Transaction{
		txOn("2025-02-10", nil),
		txOn("2025-06-15", nil),
		txOn("2026-01-15", intPtr(2025)),
	}

	got := fiscal.FilterByDateRange(txs, r)
	require.Len(t, got, 2)
	assert.Equal(t, txs[0], got[0])
	assert.Equal(t, txs[2], got[1])
}

func TestFilterByDateRange_MultiYear(t *testing.T) {
	r := dateRange("2024-07-01", "2025-06-30")
	txs := []domain.Transaction{
		txOn("2024-09-01", nil),          // inside
		txOn("2025-03-01", nil),          // inside
		txOn("2024-03-01", nil),          // same year as start but before range
		txOn("2026-01-15", intPtr(2025)), // override year within span
		txOn("2023-12-31", intPtr(2023)), // override year before span
	}

	got := fiscal.FilterByDateRange(txs, r)
	require.Len(t, got, 3)
	assert.Equal(t, txs[0], got[0])
	assert.Equal(t, txs[1], got[1])
	assert.Equal(t, txs[3], got[2])
}

func TestFilterByDateRange_BoundariesInclusive(t *testing.T) {
	r := dateRange("2025-01-01", "2025-12-31")
	txs := []domain.Transaction{
		txOn("2025-01-01", nil),
		txOn("2025-12-31", nil),
	}
	assert.Len(t, fiscal.FilterByDateRange(txs, r), 2)
}

func TestUniqueYears(t *testing.T) {
	txs := []domain.Transaction{
		txOn("2024-05-01", nil),
		txOn("2026-01-15", intPtr(2025)),
		txOn("2026-02-01", nil),
		txOn("2024-08-01", nil),
	}
	assert.Equal(t, []int{2026, 2025, 2024}, fiscal.UniqueYears(txs))
	assert.Empty(t, fiscal.UniqueYears(nil))
}

func TestGroupByYear(t *testing.T) {
	txs := []domain.Transaction{
		txOn("2025-03-01", nil),
		txOn("2026-01-15", intPtr(2025)),
		txOn("2026-02-01", nil),
	}
	groups := fiscal.GroupByYear(txs)
	require.Len(t, groups, 2)
	assert.Len(t, groups[2025], 2)
	assert.Len(t, groups[2026], 1)
}
