package services

import (
	"context"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
)

// ReportingService generates the four core reports for a data context.
// Date-range filtering follows fiscal-year override semantics throughout.
type ReportingService interface {
	// BalanceSheet partitions account balances into assets and liabilities
	// with USD-pivot totals.
	BalanceSheet(ctx context.Context, contextID string, r domain.DateRange) (*domain.BalanceSheetReport, error)

	// ProfitAndLoss aggregates income (split local/foreign) and expenses by
	// subcategory, applying tax to local income.
	ProfitAndLoss(ctx context.Context, contextID string, r domain.DateRange) (*domain.ProfitAndLossReport, error)

	// CashFlow aggregates inflows, outflows and transfers for the period.
	CashFlow(ctx context.Context, contextID string, r domain.DateRange) (*domain.CashFlowReport, error)

	// CategorySpending breaks expenses and income down by subcategory with
	// percentage-of-total.
	CategorySpending(ctx context.Context, contextID string, r domain.DateRange) (*domain.CategorySpendingReport, error)
}
