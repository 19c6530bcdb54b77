package dto

import (
	"time"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
)

// ReportPeriod echoes the date range a report was generated for.
type ReportPeriod struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

func toPeriod(r domain.DateRange) ReportPeriod {
	return ReportPeriod{
		FromDate: r.Start.Format(time.DateOnly),
		ToDate:   r.End.Format(time.DateOnly),
	}
}

// BalanceSheetResponse wraps the balance sheet report with its period.
type BalanceSheetResponse struct {
	Period ReportPeriod               `json:"period"`
	Report *domain.BalanceSheetReport `json:"report"`
}

// ProfitAndLossResponse wraps the P&L report with its period.
type ProfitAndLossResponse struct {
	Period ReportPeriod                `json:"period"`
	Report *domain.ProfitAndLossReport `json:"report"`
}

// CashFlowResponse wraps the cash flow report with its period.
type CashFlowResponse struct {
	Period ReportPeriod           `json:"period"`
	Report *domain.CashFlowReport `json:"report"`
}

// CategorySpendingResponse wraps the category spending report with its period.
type CategorySpendingResponse struct {
	Period ReportPeriod                   `json:"period"`
	Report *domain.CategorySpendingReport `json:"report"`
}

// ToBalanceSheetResponse pairs a balance sheet report with its period.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, r domain.DateRange) BalanceSheetResponse {
	return BalanceSheetResponse{Period: toPeriod(r), Report: report}
}

// ToProfitAndLossResponse pairs a P&L report with its period.
func ToProfitAndLossResponse(report *domain.ProfitAndLossReport, r domain.DateRange) ProfitAndLossResponse {
	return ProfitAndLossResponse{Period: toPeriod(r), Report: report}
}

// ToCashFlowResponse pairs a cash flow report with its period.
func ToCashFlowResponse(report *domain.CashFlowReport, r domain.DateRange) CashFlowResponse {
	return CashFlowResponse{Period: toPeriod(r), Report: report}
}

// ToCategorySpendingResponse pairs a category spending report with its period.
func ToCategorySpendingResponse(report *domain.CategorySpendingReport, r domain.DateRange) CategorySpendingResponse {
	return CategorySpendingResponse{Period: toPeriod(r), Report: report}
}
