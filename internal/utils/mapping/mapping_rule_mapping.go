package mapping

import (
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/models"
)

// ToModelMappingRule converts a domain MappingRule to a model MappingRule
func ToModelMappingRule(d domain.MappingRule) models.MappingRule {
	return models.MappingRule{
		RuleID:      d.RuleID,
		ContextID:   d.ContextID,
		Pattern:     d.Pattern,
		PatternType: string(d.PatternType),
		MatchField:  string(d.MatchField),
		Category:    string(d.Category),
		Subcategory: d.Subcategory,
		IncomeType:  string(d.IncomeType),
		Priority:    d.Priority,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMappingRule converts a model MappingRule to a domain MappingRule
func ToDomainMappingRule(m models.MappingRule) domain.MappingRule {
	return domain.MappingRule{
		RuleID:      m.RuleID,
		ContextID:   m.ContextID,
		Pattern:     m.Pattern,
		PatternType: domain.PatternType(m.PatternType),
		MatchField:  domain.MatchField(m.MatchField),
		Category:    domain.Category(m.Category),
		Subcategory: m.Subcategory,
		IncomeType:  domain.IncomeType(m.IncomeType),
		Priority:    m.Priority,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMappingRuleSlice converts a slice of model MappingRules to domain MappingRules
func ToDomainMappingRuleSlice(ms []models.MappingRule) []domain.MappingRule {
	ds := make([]domain.MappingRule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMappingRule(m)
	}
	return ds
}
