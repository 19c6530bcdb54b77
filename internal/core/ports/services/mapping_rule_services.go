package services

import (
	"context"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/dto"
)

// MappingRuleReaderSvc defines read operations for mapping rule data
type MappingRuleReaderSvc interface {
	// GetRuleByID retrieves a specific rule.
	GetRuleByID(ctx context.Context, ruleID string) (*domain.MappingRule, error)

	// ListRules retrieves all rules of a context, priority descending.
	ListRules(ctx context.Context, contextID string) ([]domain.MappingRule, error)
}

// MappingRuleWriterSvc defines write operations for mapping rule data
type MappingRuleWriterSvc interface {
	// CreateRule persists a new rule.
	CreateRule(ctx context.Context, req dto.CreateMappingRuleRequest, creatorUserID string) (*domain.MappingRule, error)

	// UpdateRule applies the non-nil fields of req to an existing rule.
	UpdateRule(ctx context.Context, ruleID string, req dto.UpdateMappingRuleRequest, updaterUserID string) (*domain.MappingRule, error)

	// DeleteRule removes a rule permanently.
	DeleteRule(ctx context.Context, ruleID string) error
}

// CategorizerSvc runs the rule engine over a context's uncategorized
// transactions and persists whatever changed.
type CategorizerSvc interface {
	// ApplyRules returns the changed transactions and how many there were.
	// Applying rules is idempotent: already-categorized transactions are
	// never reconsidered.
	ApplyRules(ctx context.Context, contextID, userID string) (*dto.ApplyRulesResponse, error)
}

// MappingRuleSvcFacade combines all rule-related service interfaces
type MappingRuleSvcFacade interface {
	MappingRuleReaderSvc
	MappingRuleWriterSvc
	CategorizerSvc
}
