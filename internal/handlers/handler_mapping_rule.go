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

// mappingRuleHandler handles HTTP requests related to mapping rules.
type mappingRuleHandler struct {
	ruleService portssvc.MappingRuleSvcFacade
}

// newMappingRuleHandler creates a new mappingRuleHandler.
func newMappingRuleHandler(rs portssvc.MappingRuleSvcFacade) *mappingRuleHandler {
	return &mappingRuleHandler{
		ruleService: rs,
	}
}

// registerMappingRuleRoutes registers routes related to mapping rules.
func registerMappingRuleRoutes(rg *gin.RouterGroup, ruleService portssvc.MappingRuleSvcFacade) {
	h := newMappingRuleHandler(ruleService)

	rules := rg.Group("/mapping-rules")
	{
		rules.POST("", h.createRule)
		rules.GET("", h.listRules)
		rules.GET("/:ruleID", h.getRuleByID)
		rules.PUT("/:ruleID", h.updateRule)
		rules.DELETE("/:ruleID", h.deleteRule)
		rules.POST("/apply", h.applyRules)
	}
}

// createRule godoc
// @Summary Create a mapping rule
// @Description Adds an auto-categorization rule for a data context
// @Tags mapping-rules
// @Accept  json
// @Produce  json
// @Param   rule body dto.CreateMappingRuleRequest true "Rule details"
// @Success 201 {object} dto.MappingRuleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create rule"
// @Router /mapping-rules [post]
func (h *mappingRuleHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMappingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)

	rule, err := h.ruleService.CreateRule(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating rule", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create rule in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rule"})
		}
		return
	}

	logger.Info("Mapping rule created", slog.String("rule_id", rule.RuleID))
	c.JSON(http.StatusCreated, dto.ToMappingRuleResponse(rule))
}

// listRules godoc
// @Summary List mapping rules of a data context
// @Description Retrieves all rules of a context, priority descending
// @Tags mapping-rules
// @Produce  json
// @Param   contextID query string true "Data context ID"
// @Success 200 {array} dto.MappingRuleResponse
// @Failure 400 {object} map[string]string "Missing contextID"
// @Failure 500 {object} map[string]string "Failed to list rules"
// @Router /mapping-rules [get]
func (h *mappingRuleHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contextID := c.Query("contextID")
	if contextID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contextID query parameter is required"})
		return
	}

	rules, err := h.ruleService.ListRules(c.Request.Context(), contextID)
	if err != nil {
		logger.Error("Failed to list rules from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rules"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMappingRuleResponse(rules))
}

// getRuleByID godoc
// @Summary Get a mapping rule by id
// @Tags mapping-rules
// @Produce  json
// @Param   ruleID path string true "Rule ID"
// @Success 200 {object} dto.MappingRuleResponse
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rule"
// @Router /mapping-rules/{ruleID} [get]
func (h *mappingRuleHandler) getRuleByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID := c.Param("ruleID")

	rule, err := h.ruleService.GetRuleByID(c.Request.Context(), ruleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		} else {
			logger.Error("Failed to get rule from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rule"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMappingRuleResponse(rule))
}

// updateRule godoc
// @Summary Update a mapping rule
// @Description Applies the provided fields to an existing rule
// @Tags mapping-rules
// @Accept  json
// @Produce  json
// @Param   ruleID path string true "Rule ID"
// @Param   rule body dto.UpdateMappingRuleRequest true "Fields to update"
// @Success 200 {object} dto.MappingRuleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 500 {object} map[string]string "Failed to update rule"
// @Router /mapping-rules/{ruleID} [put]
func (h *mappingRuleHandler) updateRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID := c.Param("ruleID")
	logger = logger.With(slog.String("rule_id", ruleID))

	var req dto.UpdateMappingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), ruleID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update rule in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rule"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMappingRuleResponse(rule))
}

// deleteRule godoc
// @Summary Delete a mapping rule
// @Description Removes a rule; transactions it already categorized keep their assignment
// @Tags mapping-rules
// @Produce  json
// @Param   ruleID path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 500 {object} map[string]string "Failed to delete rule"
// @Router /mapping-rules/{ruleID} [delete]
func (h *mappingRuleHandler) deleteRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID := c.Param("ruleID")

	if err := h.ruleService.DeleteRule(c.Request.Context(), ruleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		} else {
			logger.Error("Failed to delete rule in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rule"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// applyRules godoc
// @Summary Apply mapping rules
// @Description Runs the active rules of a context over its uncategorized transactions. Idempotent: already-categorized transactions are never reconsidered.
// @Tags mapping-rules
// @Accept  json
// @Produce  json
// @Param   request body dto.ApplyRulesRequest true "Context to categorize"
// @Success 200 {object} dto.ApplyRulesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to apply rules"
// @Router /mapping-rules/apply [post]
func (h *mappingRuleHandler) applyRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyRules", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	resp, err := h.ruleService.ApplyRules(c.Request.Context(), req.ContextID, userID)
	if err != nil {
		logger.Error("Failed to apply rules in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply rules"})
		return
	}

	logger.Info("Mapping rules applied", slog.String("context_id", req.ContextID), slog.Int("count", resp.Count))
	c.JSON(http.StatusOK, resp)
}
