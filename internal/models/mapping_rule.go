package models

// MappingRule is the database representation of an auto-categorization rule.
type MappingRule struct {
	RuleID      string `db:"rule_id"`
	ContextID   string `db:"context_id"`
	Pattern     string `db:"pattern"`
	PatternType string `db:"pattern_type"`
	MatchField  string `db:"match_field"`
	Category    string `db:"category"`
	Subcategory string `db:"subcategory"`
	IncomeType  string `db:"income_type"` // Nullable, stored as ''
	Priority    int    `db:"priority"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
