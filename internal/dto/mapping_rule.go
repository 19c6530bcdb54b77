package dto

import (
	"time"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
)

// CreateMappingRuleRequest defines the data needed to create a mapping rule.
type CreateMappingRuleRequest struct {
	ContextID   string `json:"contextID" binding:"required"`
	Pattern     string `json:"pattern" binding:"required"`
	PatternType string `json:"patternType" binding:"required,oneof=EXACT CONTAINS REGEX"`
	MatchField  string `json:"matchField" binding:"required,oneof=NAME MEMO BOTH"`
	Category    string `json:"category" binding:"required,oneof=INCOME EXPENSE TRANSFER ADJUSTMENT"`
	Subcategory string `json:"subcategory"`
	IncomeType  string `json:"incomeType" binding:"omitempty,oneof=LOCAL FOREIGN"`
	Priority    int    `json:"priority"`
	IsActive    *bool  `json:"isActive"` // Defaults to true when omitted
}

// UpdateMappingRuleRequest defines the mutable fields of a mapping rule.
// Nil pointers leave the current value untouched.
type UpdateMappingRuleRequest struct {
	Pattern     *string `json:"pattern,omitempty"`
	PatternType *string `json:"patternType,omitempty" binding:"omitempty,oneof=EXACT CONTAINS REGEX"`
	MatchField  *string `json:"matchField,omitempty" binding:"omitempty,oneof=NAME MEMO BOTH"`
	Category    *string `json:"category,omitempty" binding:"omitempty,oneof=INCOME EXPENSE TRANSFER ADJUSTMENT"`
	Subcategory *string `json:"subcategory,omitempty"`
	IncomeType  *string `json:"incomeType,omitempty" binding:"omitempty,oneof=LOCAL FOREIGN"`
	Priority    *int    `json:"priority,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// MappingRuleResponse defines the data returned for a mapping rule.
type MappingRuleResponse struct {
	RuleID      string    `json:"ruleID"`
	ContextID   string    `json:"contextID"`
	Pattern     string    `json:"pattern"`
	PatternType string    `json:"patternType"`
	MatchField  string    `json:"matchField"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	IncomeType  string    `json:"incomeType,omitempty"`
	Priority    int       `json:"priority"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ApplyRulesRequest runs the mapping rules of a context over its
// uncategorized transactions.
type ApplyRulesRequest struct {
	ContextID string `json:"contextID" binding:"required"`
}

// ApplyRulesResponse reports the transactions a rule pass changed.
type ApplyRulesResponse struct {
	Count       int                   `json:"count"`
	Categorized []TransactionResponse `json:"categorized"`
}

// ToMappingRuleResponse converts a domain MappingRule to a MappingRuleResponse DTO
func ToMappingRuleResponse(r *domain.MappingRule) MappingRuleResponse {
	return MappingRuleResponse{
		RuleID:      r.RuleID,
		ContextID:   r.ContextID,
		Pattern:     r.Pattern,
		PatternType: string(r.PatternType),
		MatchField:  string(r.MatchField),
		Category:    string(r.Category),
		Subcategory: r.Subcategory,
		IncomeType:  string(r.IncomeType),
		Priority:    r.Priority,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
	}
}

// ToListMappingRuleResponse converts a slice of domain MappingRules to DTOs
func ToListMappingRuleResponse(rules []domain.MappingRule) []MappingRuleResponse {
	res := make([]MappingRuleResponse, len(rules))
	for i, r := range rules {
		res[i] = ToMappingRuleResponse(&r)
	}
	return res
}
