package domain

// PatternType selects how a mapping rule's pattern is matched.
type PatternType string

const (
	PatternExact    PatternType = "EXACT"
	PatternContains PatternType = "CONTAINS"
	PatternRegex    PatternType = "REGEX"
)

// IsValid reports whether p is a known pattern type.
func (p PatternType) IsValid() bool {
	return p == PatternExact || p == PatternContains || p == PatternRegex
}

// MatchField selects which transaction text a mapping rule inspects.
type MatchField string

const (
	MatchName MatchField = "NAME"
	MatchMemo MatchField = "MEMO"
	MatchBoth MatchField = "BOTH"
)

// IsValid reports whether f is a known match field.
func (f MatchField) IsValid() bool {
	return f == MatchName || f == MatchMemo || f == MatchBoth
}

// MappingRule auto-categorizes uncategorized transactions. Rules are
// evaluated in descending Priority order and the first match wins; inactive
// rules are skipped entirely.
type MappingRule struct {
	RuleID      string      `json:"ruleID"`    // Primary Key (e.g., UUID)
	ContextID   string      `json:"contextID"` // Owning data context (NON-NULL)
	Pattern     string      `json:"pattern"`
	PatternType PatternType `json:"patternType"`
	MatchField  MatchField  `json:"matchField"`
	Category    Category    `json:"category"`    // Category assigned on match
	Subcategory string      `json:"subcategory"` // Nullable
	IncomeType  IncomeType  `json:"incomeType,omitempty"`
	Priority    int         `json:"priority"` // Higher wins
	IsActive    bool        `json:"isActive"`
	AuditFields
}
