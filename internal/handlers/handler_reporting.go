package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/finbook/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for report generation.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report generation routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/profit-loss", h.profitAndLoss)
		reports.GET("/cash-flow", h.cashFlow)
		reports.GET("/category-spending", h.categorySpending)
	}
}

// reportParams extracts and validates the shared contextID + date range
// query parameters of every report route.
func reportParams(c *gin.Context) (string, domain.DateRange, bool) {
	contextID := c.Query("contextID")
	if contextID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contextID query parameter is required"})
		return "", domain.DateRange{}, false
	}

	from, err := time.Parse(time.DateOnly, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be a YYYY-MM-DD date"})
		return "", domain.DateRange{}, false
	}
	to, err := time.Parse(time.DateOnly, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be a YYYY-MM-DD date"})
		return "", domain.DateRange{}, false
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to precedes from"})
		return "", domain.DateRange{}, false
	}

	return contextID, domain.DateRange{Start: from, End: to}, true
}

// balanceSheet godoc
// @Summary Balance sheet report
// @Description Partitions account balances into assets and liabilities with USD-pivot totals
// @Tags reports
// @Produce  json
// @Param   contextID query string true "Data context ID"
// @Param   from query string true "Period start (YYYY-MM-DD)"
// @Param   to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contextID, period, ok := reportParams(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), contextID, period)
	if err != nil {
		logger.Error("Failed to generate balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report, period))
}

// profitAndLoss godoc
// @Summary Profit and loss report
// @Description Aggregates income split local/foreign and expenses by subcategory, with tax applied to local income
// @Tags reports
// @Produce  json
// @Param   contextID query string true "Data context ID"
// @Param   from query string true "Period start (YYYY-MM-DD)"
// @Param   to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/profit-loss [get]
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contextID, period, ok := reportParams(c)
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), contextID, period)
	if err != nil {
		logger.Error("Failed to generate profit and loss", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report, period))
}

// cashFlow godoc
// @Summary Cash flow report
// @Description Aggregates period inflows, outflows and transfers with derived opening and closing balances
// @Tags reports
// @Produce  json
// @Param   contextID query string true "Data context ID"
// @Param   from query string true "Period start (YYYY-MM-DD)"
// @Param   to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/cash-flow [get]
func (h *reportingHandler) cashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contextID, period, ok := reportParams(c)
	if !ok {
		return
	}

	report, err := h.reportingService.CashFlow(c.Request.Context(), contextID, period)
	if err != nil {
		logger.Error("Failed to generate cash flow", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowResponse(report, period))
}

// categorySpending godoc
// @Summary Category spending report
// @Description Breaks expenses and income down by subcategory with counts and percentage-of-total
// @Tags reports
// @Produce  json
// @Param   contextID query string true "Data context ID"
// @Param   from query string true "Period start (YYYY-MM-DD)"
// @Param   to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.CategorySpendingResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/category-spending [get]
func (h *reportingHandler) categorySpending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contextID, period, ok := reportParams(c)
	if !ok {
		return
	}

	report, err := h.reportingService.CategorySpending(c.Request.Context(), contextID, period)
	if err != nil {
		logger.Error("Failed to generate category spending", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCategorySpendingResponse(report, period))
}
