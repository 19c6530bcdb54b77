package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/finbook/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/import", h.importBatch)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransactionByID)
		transactions.PUT("/:transactionID/category", h.updateCategory)
		transactions.PUT("/:transactionID/fiscal-year", h.setFiscalYear)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// importBatch godoc
// @Summary Import a parsed bank statement
// @Description Ingests a parsed statement: upserts the account by identity hash and stores new transactions, deduped by FITID
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   batch body dto.ImportBatchRequest true "Parsed statement"
// @Success 201 {object} dto.ImportBatchResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to import statement"
// @Router /transactions/import [post]
func (h *transactionHandler) importBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ImportBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ImportBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	importerUserID, _ := middleware.GetUserIDFromContext(c)
	logger = logger.With(slog.String("context_id", req.ContextID))
	logger.Info("Received statement import", slog.Int("transactions", len(req.Transactions)))

	resp, err := h.transactionService.ImportBatch(c.Request.Context(), req, importerUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to import statement in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import statement"})
		}
		return
	}

	logger.Info("Statement imported",
		slog.String("import_batch_id", resp.ImportBatchID),
		slog.Int("imported", resp.Imported),
		slog.Int("skipped", resp.Skipped))
	c.JSON(http.StatusCreated, resp)
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves a filtered page of a context's transactions. Fiscal-year and date-range filters honor override semantics.
// @Tags transactions
// @Produce  json
// @Param   contextID query string true "Data context ID"
// @Param   accountID query string false "Restrict to one account"
// @Param   fiscalYear query int false "Effective fiscal year"
// @Param   from query string false "Period start (YYYY-MM-DD)"
// @Param   to query string false "Period end (YYYY-MM-DD)"
// @Param   category query string false "Category filter"
// @Param   limit query int false "Page size (default 100, max 500)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid filters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contextID := c.Query("contextID")
	if contextID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contextID query parameter is required"})
		return
	}

	var req dto.ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), contextID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getTransactionByID godoc
// @Summary Get a transaction by id
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	tx, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// updateCategory godoc
// @Summary Categorize a transaction
// @Description Applies a manual category, subcategory and income type to a transaction
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   category body dto.UpdateTransactionCategoryRequest true "Categorization"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /transactions/{transactionID}/category [put]
func (h *transactionHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", transactionID))

	var req dto.UpdateTransactionCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)

	tx, err := h.transactionService.UpdateCategory(c.Request.Context(), transactionID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update category in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	logger.Info("Transaction categorized", slog.String("category", string(tx.Category)))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// setFiscalYear godoc
// @Summary Set or clear a fiscal year override
// @Description Assigns the reporting year of a transaction without touching its bank-posted date. A null fiscalYear clears the override.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   fiscalYear body dto.SetFiscalYearRequest true "Fiscal year override"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /transactions/{transactionID}/fiscal-year [put]
func (h *transactionHandler) setFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", transactionID))

	var req dto.SetFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetFiscalYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)

	tx, err := h.transactionService.SetFiscalYear(c.Request.Context(), transactionID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to set fiscal year in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to delete transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
