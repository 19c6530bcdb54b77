package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/finbook/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reconciliationHandler handles HTTP requests related to reconciliations.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvc
}

// newReconciliationHandler creates a new reconciliationHandler.
func newReconciliationHandler(rs portssvc.ReconciliationSvc) *reconciliationHandler {
	return &reconciliationHandler{
		reconciliationService: rs,
	}
}

// registerReconciliationRoutes registers the per-account reconciliation routes.
func registerReconciliationRoutes(accounts *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvc) {
	h := newReconciliationHandler(reconciliationService)

	accounts.GET("/:accountID/expected-balance", h.getExpectedBalance)
	accounts.POST("/:accountID/reconciliations", h.performReconciliation)
	accounts.GET("/:accountID/reconciliations", h.listReconciliations)
}

// getExpectedBalance godoc
// @Summary Get the expected balance of an account
// @Description Projects the account's snapshot balance forward through its transactions to the given date
// @Tags reconciliations
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   asOfDate query string true "Projection date (YYYY-MM-DD)"
// @Success 200 {object} dto.ExpectedBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /accounts/{accountID}/expected-balance [get]
func (h *reconciliationHandler) getExpectedBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	asOfDate, err := time.Parse(time.DateOnly, c.Query("asOfDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asOfDate must be a YYYY-MM-DD date"})
		return
	}

	balance, err := h.reconciliationService.GetExpectedBalance(c.Request.Context(), accountID, asOfDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to compute expected balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ExpectedBalanceResponse{
		AccountID:       accountID,
		AsOfDate:        asOfDate,
		ExpectedBalance: balance,
	})
}

// performReconciliation godoc
// @Summary Reconcile an account against a bank-confirmed balance
// @Description Computes the discrepancy at the reconciled date, optionally synthesizes a correcting adjustment transaction, and appends an audit record. Re-reconciling the same date supersedes the earlier adjustment.
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   reconciliation body dto.PerformReconciliationRequest true "Bank-confirmed balance"
// @Success 200 {object} dto.ReconciliationResultResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to reconcile"
// @Router /accounts/{accountID}/reconciliations [post]
func (h *reconciliationHandler) performReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	logger = logger.With(slog.String("account_id", accountID))

	var req dto.PerformReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PerformReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.reconciliationService.PerformReconciliation(c.Request.Context(), accountID, req, userID)
	if err != nil {
		logger.Error("Failed to perform reconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile"})
		return
	}

	logger.Info("Reconciliation finished", slog.Bool("success", result.Success), slog.String("message", result.Message))
	c.JSON(http.StatusOK, dto.ToReconciliationResultResponse(result))
}

// listReconciliations godoc
// @Summary List reconciliation history of an account
// @Description Retrieves the append-only reconciliation audit records, newest first
// @Tags reconciliations
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {array} dto.ReconciliationResponse
// @Failure 500 {object} map[string]string "Failed to list reconciliations"
// @Router /accounts/{accountID}/reconciliations [get]
func (h *reconciliationHandler) listReconciliations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	recs, err := h.reconciliationService.ListReconciliations(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("Failed to list reconciliations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reconciliations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListReconciliationResponse(recs))
}
