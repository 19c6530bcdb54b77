package services

import (
	"context"
	"fmt"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbook/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/utils/fiscal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	txRepo       portsrepo.TransactionRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountRepositoryFacade, txRepo portsrepo.TransactionRepositoryFacade, currencyRepo portsrepo.CurrencyReader) portssvc.ReportingService {
	return &reportingService{accountRepo: accountRepo, txRepo: txRepo, currencyRepo: currencyRepo}
}

// Ensure reportingService implements the service interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// periodTransactions loads a context's transactions narrowed to the report
// period. Filtering honors fiscal-year overrides, so it happens here rather
// than in SQL.
func (s *reportingService) periodTransactions(ctx context.Context, contextID string, r domain.DateRange) ([]domain.Transaction, error) {
	txs, err := s.txRepo.ListTransactionsByContext(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for report: %w", err)
	}
	return fiscal.FilterByDateRange(txs, r), nil
}

// BalanceSheet partitions current account balances into assets and
// liabilities with USD-pivot totals.
func (s *reportingService) BalanceSheet(ctx context.Context, contextID string, r domain.DateRange) (*domain.BalanceSheetReport, error) {
	accounts, err := s.accountRepo.ListAccountsByContext(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for balance sheet: %w", err)
	}
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies for balance sheet: %w", err)
	}
	return BuildBalanceSheet(accounts, currencies), nil
}

// ProfitAndLoss aggregates period income and expenses by subcategory,
// splitting income into local and foreign and taxing local income.
func (s *reportingService) ProfitAndLoss(ctx context.Context, contextID string, r domain.DateRange) (*domain.ProfitAndLossReport, error) {
	txs, err := s.periodTransactions(ctx, contextID, r)
	if err != nil {
		return nil, err
	}
	return BuildProfitAndLoss(txs), nil
}

// CashFlow aggregates period inflows, outflows and transfers, with opening
// and closing balances derived from current account snapshots.
func (s *reportingService) CashFlow(ctx context.Context, contextID string, r domain.DateRange) (*domain.CashFlowReport, error) {
	txs, err := s.periodTransactions(ctx, contextID, r)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccountsByContext(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for cash flow: %w", err)
	}
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies for cash flow: %w", err)
	}
	return BuildCashFlow(txs, accounts, currencies), nil
}

// CategorySpending breaks period expenses and income down by subcategory
// with counts and percentage-of-total.
func (s *reportingService) CategorySpending(ctx context.Context, contextID string, r domain.DateRange) (*domain.CategorySpendingReport, error) {
	txs, err := s.periodTransactions(ctx, contextID, r)
	if err != nil {
		return nil, err
	}
	return BuildCategorySpending(txs), nil
}
