package repositories

import (
	"context"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
)

// MappingRuleReader defines read operations for mapping rule data
type MappingRuleReader interface {
	// FindRuleByID retrieves a specific rule by its id.
	FindRuleByID(ctx context.Context, ruleID string) (*domain.MappingRule, error)

	// ListRulesByContext retrieves all rules of a data context, ordered by
	// priority descending then creation time.
	ListRulesByContext(ctx context.Context, contextID string) ([]domain.MappingRule, error)
}

// MappingRuleWriter defines write operations for mapping rule data
type MappingRuleWriter interface {
	// SaveRule persists a new rule.
	SaveRule(ctx context.Context, rule domain.MappingRule) error

	// UpdateRule overwrites an existing rule.
	UpdateRule(ctx context.Context, rule domain.MappingRule) error

	// DeleteRule removes a rule permanently.
	DeleteRule(ctx context.Context, ruleID string) error
}

// MappingRuleRepositoryFacade combines all rule-related repository interfaces
type MappingRuleRepositoryFacade interface {
	MappingRuleReader
	MappingRuleWriter
}
