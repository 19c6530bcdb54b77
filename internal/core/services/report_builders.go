package services

import (
	"sort"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/utils/fx"
	"github.com/finbook/bookkeeping_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// localTaxRatePercent is the flat tax rate applied to local income on the
// profit and loss report. Foreign income is reported pre-tax and excluded.
var localTaxRatePercent = decimal.NewFromInt(15)

// fallbackSubcategory buckets transactions that carry no subcategory.
const fallbackSubcategory = "Other"

func subcategoryOf(tx domain.Transaction) string {
	if tx.Subcategory == "" {
		return fallbackSubcategory
	}
	return tx.Subcategory
}

// subcategoryLines converts a grouped sum map into a deterministic slice,
// sorted by subcategory name.
func subcategoryLines(groups map[string]decimal.Decimal) []domain.SubcategoryAmount {
	lines := make([]domain.SubcategoryAmount, 0, len(groups))
	for sub, amount := range groups {
		lines = append(lines, domain.SubcategoryAmount{Subcategory: sub, Amount: amount})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Subcategory < lines[j].Subcategory })
	return lines
}

// BuildBalanceSheet partitions accounts into assets (checking) and
// liabilities (credit cards, shown at absolute magnitude). Per-account
// balances stay in their own currency; totals pivot through USD.
func BuildBalanceSheet(accounts []domain.BankAccount, currencies []domain.Currency) *domain.BalanceSheetReport {
	report := &domain.BalanceSheetReport{
		Assets:           []domain.AccountBalanceLine{},
		Liabilities:      []domain.AccountBalanceLine{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
	}

	for _, account := range accounts {
		line := domain.AccountBalanceLine{
			AccountID:    account.AccountID,
			Name:         account.Name,
			CurrencyCode: account.CurrencyCode,
			Balance:      account.Balance,
			BalanceUSD:   fx.ToUSD(account.Balance, account.CurrencyCode, currencies),
		}
		if account.AccountType == domain.AccountCreditCard {
			line.Balance = line.Balance.Abs()
			line.BalanceUSD = line.BalanceUSD.Abs()
			report.Liabilities = append(report.Liabilities, line)
			report.TotalLiabilities = report.TotalLiabilities.Add(line.BalanceUSD)
		} else {
			report.Assets = append(report.Assets, line)
			report.TotalAssets = report.TotalAssets.Add(line.BalanceUSD)
		}
	}

	report.NetWorth = report.TotalAssets.Sub(report.TotalLiabilities)
	return report
}

// BuildProfitAndLoss aggregates income by subcategory split into local and
// foreign, aggregates expenses by subcategory at positive magnitude, and
// applies the flat tax to local income only. Income with no income type is
// treated as local.
func BuildProfitAndLoss(txs []domain.Transaction) *domain.ProfitAndLossReport {
	local := make(map[string]decimal.Decimal)
	foreign := make(map[string]decimal.Decimal)
	expenses := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		switch tx.Category {
		case domain.CategoryIncome:
			if tx.IncomeType == domain.IncomeForeign {
				foreign[subcategoryOf(tx)] = foreign[subcategoryOf(tx)].Add(tx.Amount)
			} else {
				local[subcategoryOf(tx)] = local[subcategoryOf(tx)].Add(tx.Amount)
			}
		case domain.CategoryExpense:
			expenses[subcategoryOf(tx)] = expenses[subcategoryOf(tx)].Add(tx.Amount.Neg())
		}
	}

	report := &domain.ProfitAndLossReport{
		LocalIncome:   subcategoryLines(local),
		ForeignIncome: subcategoryLines(foreign),
		Expenses:      subcategoryLines(expenses),
	}
	report.TotalLocalIncome = money.SumBy(report.LocalIncome, func(l domain.SubcategoryAmount) decimal.Decimal { return l.Amount })
	report.TotalForeignIncome = money.SumBy(report.ForeignIncome, func(l domain.SubcategoryAmount) decimal.Decimal { return l.Amount })
	report.TotalRevenue = report.TotalLocalIncome.Add(report.TotalForeignIncome)
	report.TotalExpenses = money.SumBy(report.Expenses, func(l domain.SubcategoryAmount) decimal.Decimal { return l.Amount })
	report.GrossProfit = report.TotalRevenue.Sub(report.TotalExpenses)
	report.Tax = money.ApplyRate(report.TotalLocalIncome, localTaxRatePercent)
	report.NetProfit = report.GrossProfit.Sub(report.Tax)
	return report
}

// BuildCashFlow aggregates period transactions by category: positive income
// transactions are inflows, expense transactions are outflows (reported at
// absolute magnitude). Transfers are netted separately and excluded from
// both; uncategorized and adjustment transactions stay out of the flows
// entirely. The closing balance is the USD-pivot sum of current account
// balances; the opening balance is derived backwards from it.
func BuildCashFlow(txs []domain.Transaction, accounts []domain.BankAccount, currencies []domain.Currency) *domain.CashFlowReport {
	inflows := make(map[string]decimal.Decimal)
	outflows := make(map[string]decimal.Decimal)
	transfers := decimal.Zero

	for _, tx := range txs {
		switch tx.Category {
		case domain.CategoryTransfer:
			transfers = transfers.Add(tx.Amount)
		case domain.CategoryIncome:
			if tx.Amount.IsPositive() {
				inflows[subcategoryOf(tx)] = inflows[subcategoryOf(tx)].Add(tx.Amount)
			}
		case domain.CategoryExpense:
			outflows[subcategoryOf(tx)] = outflows[subcategoryOf(tx)].Add(tx.Amount.Abs())
		}
	}

	report := &domain.CashFlowReport{
		Inflows:   subcategoryLines(inflows),
		Outflows:  subcategoryLines(outflows),
		Transfers: transfers,
	}
	report.TotalInflows = money.SumBy(report.Inflows, func(l domain.SubcategoryAmount) decimal.Decimal { return l.Amount })
	report.TotalOutflows = money.SumBy(report.Outflows, func(l domain.SubcategoryAmount) decimal.Decimal { return l.Amount })
	report.NetCashFlow = report.TotalInflows.Sub(report.TotalOutflows)

	closing := decimal.Zero
	for _, account := range accounts {
		closing = closing.Add(fx.ToUSD(account.Balance, account.CurrencyCode, currencies))
	}
	report.ClosingBalance = closing
	report.OpeningBalance = closing.Sub(report.NetCashFlow)
	return report
}

// BuildCategorySpending breaks expenses and income down by subcategory with
// transaction counts and percentage-of-total, sorted by amount descending.
// Percentages are zero-safe: an empty period reports zero, not a division error.
func BuildCategorySpending(txs []domain.Transaction) *domain.CategorySpendingReport {
	type bucket struct {
		amount decimal.Decimal
		count  int
	}
	expenses := make(map[string]*bucket)
	income := make(map[string]*bucket)

	add := func(m map[string]*bucket, sub string, amount decimal.Decimal) {
		b, ok := m[sub]
		if !ok {
			b = &bucket{amount: decimal.Zero}
			m[sub] = b
		}
		b.amount = b.amount.Add(amount)
		b.count++
	}

	for _, tx := range txs {
		switch tx.Category {
		case domain.CategoryExpense:
			add(expenses, subcategoryOf(tx), tx.Amount.Neg())
		case domain.CategoryIncome:
			add(income, subcategoryOf(tx), tx.Amount)
		}
	}

	toLines := func(m map[string]*bucket) ([]domain.SpendingLine, decimal.Decimal) {
		total := decimal.Zero
		for _, b := range m {
			total = total.Add(b.amount)
		}
		lines := make([]domain.SpendingLine, 0, len(m))
		for sub, b := range m {
			lines = append(lines, domain.SpendingLine{
				Subcategory: sub,
				Count:       b.count,
				Amount:      b.amount,
				Percentage:  money.PercentOf(b.amount, total),
			})
		}
		sort.Slice(lines, func(i, j int) bool {
			if !lines[i].Amount.Equal(lines[j].Amount) {
				return lines[i].Amount.GreaterThan(lines[j].Amount)
			}
			return lines[i].Subcategory < lines[j].Subcategory
		})
		return lines, total
	}

	report := &domain.CategorySpendingReport{}
	report.Expenses, report.TotalExpenses = toLines(expenses)
	report.Income, report.TotalIncome = toLines(income)
	return report
}
