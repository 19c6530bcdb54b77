package services

import (
	"testing"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportCurrencies() []domain.Currency {
	return []domain.Currency{
		{CurrencyCode: "EUR", ExchangeRate: decimal.NewFromFloat(0.5)},
	}
}

func reportTx(category domain.Category, subcategory string, amount float64) domain.Transaction {
	return domain.Transaction{
		Category:    category,
		Subcategory: subcategory,
		Amount:      decimal.NewFromFloat(amount),
	}
}

func TestBuildBalanceSheet(t *testing.T) {
	accounts := []domain.BankAccount{
		{AccountID: "a1", Name: "Checking", AccountType: domain.AccountChecking, CurrencyCode: "USD", Balance: decimal.NewFromInt(1000)},
		{AccountID: "a2", Name: "EUR Checking", AccountType: domain.AccountChecking, CurrencyCode: "EUR", Balance: decimal.NewFromInt(200)},
		{AccountID: "a3", Name: "Card", AccountType: domain.AccountCreditCard, CurrencyCode: "USD", Balance: decimal.NewFromInt(-300)},
	}

	report := BuildBalanceSheet(accounts, reportCurrencies())

	require.Len(t, report.Assets, 2)
	require.Len(t, report.Liabilities, 1)

	// 200 EUR at 0.5 per USD pivots to 100 USD.
	assert.True(t, report.Assets[1].BalanceUSD.Equal(decimal.NewFromInt(100)), "got %s", report.Assets[1].BalanceUSD)
	assert.True(t, report.TotalAssets.Equal(decimal.NewFromInt(1100)), "got %s", report.TotalAssets)

	// Credit card debt is shown at positive magnitude.
	assert.True(t, report.Liabilities[0].Balance.Equal(decimal.NewFromInt(300)))
	assert.True(t, report.TotalLiabilities.Equal(decimal.NewFromInt(300)))

	assert.True(t, report.NetWorth.Equal(decimal.NewFromInt(800)), "got %s", report.NetWorth)
}

func TestBuildBalanceSheet_Empty(t *testing.T) {
	report := BuildBalanceSheet(nil, nil)
	assert.Empty(t, report.Assets)
	assert.Empty(t, report.Liabilities)
	assert.True(t, report.NetWorth.IsZero())
}

func TestBuildProfitAndLoss(t *testing.T) {
	foreignTx := reportTx(domain.CategoryIncome, "Consulting", 2000)
	foreignTx.IncomeType = domain.IncomeForeign

	txs := []domain.Transaction{
		reportTx(domain.CategoryIncome, "Salary", 1000),
		foreignTx,
		reportTx(domain.CategoryExpense, "Rent", -500),
		reportTx(domain.CategoryExpense, "Rent", -500),
		reportTx(domain.CategoryExpense, "Food", -100),
		reportTx(domain.CategoryTransfer, "", 999), // ignored
	}

	report := BuildProfitAndLoss(txs)

	require.Len(t, report.LocalIncome, 1)
	require.Len(t, report.ForeignIncome, 1)
	require.Len(t, report.Expenses, 2)

	assert.True(t, report.TotalLocalIncome.Equal(decimal.NewFromInt(1000)))
	assert.True(t, report.TotalForeignIncome.Equal(decimal.NewFromInt(2000)))
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(3000)))

	// Expenses are flipped to positive magnitude and grouped.
	assert.Equal(t, "Food", report.Expenses[0].Subcategory)
	assert.True(t, report.Expenses[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Rent", report.Expenses[1].Subcategory)
	assert.True(t, report.Expenses[1].Amount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, report.TotalExpenses.Equal(decimal.NewFromInt(1100)))

	assert.True(t, report.GrossProfit.Equal(decimal.NewFromInt(1900)))

	// Tax applies to local income only: 15% of 1000.
	assert.True(t, report.Tax.Equal(decimal.NewFromInt(150)), "got %s", report.Tax)
	assert.True(t, report.NetProfit.Equal(decimal.NewFromInt(1750)), "got %s", report.NetProfit)
}

func TestBuildProfitAndLoss_UntypedIncomeIsLocal(t *testing.T) {
	txs := []domain.Transaction{
		reportTx(domain.CategoryIncome, "", 100),
	}

	report := BuildProfitAndLoss(txs)

	require.Len(t, report.LocalIncome, 1)
	assert.Equal(t, "Other", report.LocalIncome[0].Subcategory)
	assert.Empty(t, report.ForeignIncome)
	assert.True(t, report.Tax.Equal(decimal.NewFromInt(15)))
}

func TestBuildCashFlow(t *testing.T) {
	txs := []domain.Transaction{
		reportTx(domain.CategoryIncome, "Salary", 1000),
		reportTx(domain.CategoryExpense, "Rent", -400),
		reportTx(domain.CategoryTransfer, "", -250),
		reportTx(domain.CategoryTransfer, "", 250),
		// A positive-amount expense (refund) still counts as an outflow at
		// absolute magnitude.
		reportTx(domain.CategoryExpense, "Rent", 120),
		// Uncategorized and adjustment transactions stay out of the flows
		// even when their sign looks like an inflow or outflow.
		reportTx(domain.CategoryUncategorized, "", 500),
		reportTx(domain.CategoryAdjustment, "", -75),
	}
	accounts := []domain.BankAccount{
		{AccountID: "a1", CurrencyCode: "USD", Balance: decimal.NewFromInt(5000)},
		{AccountID: "a2", CurrencyCode: "EUR", Balance: decimal.NewFromInt(200)},
	}

	report := BuildCashFlow(txs, accounts, reportCurrencies())

	require.Len(t, report.Inflows, 1)
	require.Len(t, report.Outflows, 1)
	assert.True(t, report.TotalInflows.Equal(decimal.NewFromInt(1000)))
	assert.True(t, report.TotalOutflows.Equal(decimal.NewFromInt(520)), "got %s", report.TotalOutflows)
	assert.True(t, report.NetCashFlow.Equal(decimal.NewFromInt(480)))

	// Transfers between own accounts net to zero and stay out of the flows.
	assert.True(t, report.Transfers.IsZero())

	// Closing = 5000 + 200*0.5 = 5100; opening derived backwards.
	assert.True(t, report.ClosingBalance.Equal(decimal.NewFromInt(5100)), "got %s", report.ClosingBalance)
	assert.True(t, report.OpeningBalance.Equal(decimal.NewFromInt(4620)), "got %s", report.OpeningBalance)
}

func TestBuildCategorySpending(t *testing.T) {
	txs := []domain.Transaction{
		reportTx(domain.CategoryExpense, "Rent", -800),
		reportTx(domain.CategoryExpense, "Food", -150),
		reportTx(domain.CategoryExpense, "Food", -50),
		reportTx(domain.CategoryIncome, "Salary", 1000),
	}

	report := BuildCategorySpending(txs)

	require.Len(t, report.Expenses, 2)
	assert.Equal(t, "Rent", report.Expenses[0].Subcategory)
	assert.True(t, report.Expenses[0].Amount.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, 1, report.Expenses[0].Count)
	assert.True(t, report.Expenses[0].Percentage.Equal(decimal.NewFromInt(80)), "got %s", report.Expenses[0].Percentage)

	assert.Equal(t, "Food", report.Expenses[1].Subcategory)
	assert.Equal(t, 2, report.Expenses[1].Count)
	assert.True(t, report.Expenses[1].Percentage.Equal(decimal.NewFromInt(20)))

	require.Len(t, report.Income, 1)
	assert.True(t, report.Income[0].Percentage.Equal(decimal.NewFromInt(100)))
	assert.True(t, report.TotalExpenses.Equal(decimal.NewFromInt(1000)))
	assert.True(t, report.TotalIncome.Equal(decimal.NewFromInt(1000)))
}

func TestBuildCategorySpending_EmptyPeriodIsZeroSafe(t *testing.T) {
	report := BuildCategorySpending(nil)
	assert.Empty(t, report.Expenses)
	assert.Empty(t, report.Income)
	assert.True(t, report.TotalExpenses.IsZero())
	assert.True(t, report.TotalIncome.IsZero())
}
