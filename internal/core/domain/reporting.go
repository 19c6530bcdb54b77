package domain

import "github.com/shopspring/decimal"

// AccountBalanceLine is one account's contribution to the balance sheet.
// Balance is in the account's own currency; BalanceUSD is its USD-pivot
// conversion used for cross-currency totals.
type AccountBalanceLine struct {
	AccountID    string          `json:"accountID"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	BalanceUSD   decimal.Decimal `json:"balanceUSD"`
}

// BalanceSheetReport partitions accounts into assets (checking) and
// liabilities (credit cards, shown at absolute magnitude). Totals are USD.
type BalanceSheetReport struct {
	Assets           []AccountBalanceLine `json:"assets"`
	Liabilities      []AccountBalanceLine `json:"liabilities"`
	TotalAssets      decimal.Decimal      `json:"totalAssets"`
	TotalLiabilities decimal.Decimal      `json:"totalLiabilities"`
	NetWorth         decimal.Decimal      `json:"netWorth"`
}

// SubcategoryAmount is an aggregated amount for one subcategory.
type SubcategoryAmount struct {
	Subcategory string          `json:"subcategory"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProfitAndLossReport splits income by income type, groups expenses by
// subcategory (sign flipped to positive for display), and applies tax to
// local income only.
type ProfitAndLossReport struct {
	LocalIncome        []SubcategoryAmount `json:"localIncome"`
	ForeignIncome      []SubcategoryAmount `json:"foreignIncome"`
	Expenses           []SubcategoryAmount `json:"expenses"`
	TotalLocalIncome   decimal.Decimal     `json:"totalLocalIncome"`
	TotalForeignIncome decimal.Decimal     `json:"totalForeignIncome"`
	TotalRevenue       decimal.Decimal     `json:"totalRevenue"`
	TotalExpenses      decimal.Decimal     `json:"totalExpenses"`
	GrossProfit        decimal.Decimal     `json:"grossProfit"`
	Tax                decimal.Decimal     `json:"tax"`
	NetProfit          decimal.Decimal     `json:"netProfit"`
}

// CashFlowReport aggregates inflows and outflows by subcategory. Transfers
// are summed separately; in a closed system they net to zero. OpeningBalance
// is derived as ClosingBalance minus NetCashFlow, where ClosingBalance is the
// current sum of account balances.
type CashFlowReport struct {
	Inflows        []SubcategoryAmount `json:"inflows"`
	Outflows       []SubcategoryAmount `json:"outflows"`
	TotalInflows   decimal.Decimal     `json:"totalInflows"`
	TotalOutflows  decimal.Decimal     `json:"totalOutflows"`
	Transfers      decimal.Decimal     `json:"transfers"`
	NetCashFlow    decimal.Decimal     `json:"netCashFlow"`
	OpeningBalance decimal.Decimal     `json:"openingBalance"`
	ClosingBalance decimal.Decimal     `json:"closingBalance"`
}

// SpendingLine is one subcategory row of the category spending report.
type SpendingLine struct {
	Subcategory string          `json:"subcategory"`
	Count       int             `json:"count"`
	Amount      decimal.Decimal `json:"amount"`
	Percentage  decimal.Decimal `json:"percentage"`
}

// CategorySpendingReport breaks expenses and income down by subcategory with
// counts and percentage-of-total, sorted descending by amount.
type CategorySpendingReport struct {
	Expenses      []SpendingLine  `json:"expenses"`
	Income        []SpendingLine  `json:"income"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
}
