package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/finbook/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to bank accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts, including the
// per-account reconciliation routes.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, reconciliationService portssvc.ReconciliationSvc) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccountByID)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.DELETE("/:accountID", h.deleteAccount)
	}

	registerReconciliationRoutes(accounts, reconciliationService)
}

// createAccount godoc
// @Summary Create a new bank account
// @Description Registers a bank account within a data context
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Account already exists"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	logger = logger.With(slog.String("context_id", req.ContextID))
	logger.Info("Received request to create account", slog.String("name", req.Name))

	createdAccount, err := h.accountService.CreateAccount(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate account", slog.String("account_id_hash", req.AccountIDHash))
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this identity already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", createdAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(createdAccount))
}

// getAccountByID godoc
// @Summary Get an account by id
// @Description Retrieves details for a specific bank account
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccountByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	logger = logger.With(slog.String("account_id", accountID))

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts of a data context
// @Description Retrieves all bank accounts within the given context
// @Tags accounts
// @Produce  json
// @Param   contextID query string true "Data context ID"
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} map[string]string "Missing contextID"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contextID := c.Query("contextID")
	if contextID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contextID query parameter is required"})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), contextID)
	if err != nil {
		logger.Error("Failed to list accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	logger.Info("Accounts listed successfully", slog.String("context_id", contextID), slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates the name or snapshot balance of a bank account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Router /accounts/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	logger = logger.With(slog.String("account_id", accountID))

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)

	updatedAccount, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		}
		return
	}

	logger.Info("Account updated successfully")
	c.JSON(http.StatusOK, dto.ToAccountResponse(updatedAccount))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Removes a bank account permanently
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to delete account"
// @Router /accounts/{accountID} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	if err := h.accountService.DeleteAccount(c.Request.Context(), accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Account %s not found", accountID)})
		} else {
			logger.Error("Failed to delete account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
