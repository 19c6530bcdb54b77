// Package categorize applies mapping rules to uncategorized transactions.
//
// The pass is a pure transform: it never mutates its inputs and returns the
// full transaction set alongside the list of changes, so a run is trivially
// replayable and testable. Determinism is guaranteed by a stable sort on
// rule priority with first-match-wins evaluation.
package categorize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
)

// Result is the outcome of one rule-application pass.
type Result struct {
	// Transactions is the complete input set with categorized transactions
	// replaced, original order preserved.
	Transactions []domain.Transaction
	// Categorized holds only the transactions a rule changed.
	Categorized []domain.Transaction
	// Count is len(Categorized), reported to callers as "N transactions updated".
	Count int
}

// ApplyRules runs one pass over txs: each uncategorized transaction is tested
// against the active rules in descending priority order and the first match
// is applied. Already-categorized transactions are never touched, so
// re-running a pass is a no-op.
func ApplyRules(txs []domain.Transaction, rules []domain.MappingRule) Result {
	ordered := orderedActiveRules(rules)
	compiled := make(map[string]*regexp.Regexp, len(ordered))

	result := Result{
		Transactions: make([]domain.Transaction, len(txs)),
		Categorized:  nil,
	}
	for i, tx := range txs {
		result.Transactions[i] = tx
		if !tx.IsUncategorized() {
			continue
		}
		for _, rule := range ordered {
			if !matches(tx, rule, compiled) {
				continue
			}
			updated := apply(tx, rule)
			result.Transactions[i] = updated
			result.Categorized = append(result.Categorized, updated)
			break
		}
	}
	result.Count = len(result.Categorized)
	return result
}

// orderedActiveRules filters out inactive rules and sorts the rest by
// priority descending. The sort is stable so ties keep their input order
// and repeated runs are deterministic.
func orderedActiveRules(rules []domain.MappingRule) []domain.MappingRule {
	active := make([]domain.MappingRule, 0, len(rules))
	for _, r := range rules {
		if r.IsActive {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})
	return active
}

// matchText assembles the text a rule inspects.
func matchText(tx domain.Transaction, field domain.MatchField) string {
	switch field {
	case domain.MatchMemo:
		return tx.Memo
	case domain.MatchName:
		return tx.Name
	default: // BOTH
		return tx.Name + " " + tx.Memo
	}
}

// matches evaluates one rule against one transaction. A regex pattern that
// fails to compile is treated as non-matching; it must never abort the batch.
func matches(tx domain.Transaction, rule domain.MappingRule, compiled map[string]*regexp.Regexp) bool {
	text := matchText(tx, rule.MatchField)
	switch rule.PatternType {
	case domain.PatternExact:
		return strings.EqualFold(text, rule.Pattern)
	case domain.PatternContains:
		return strings.Contains(strings.ToLower(text), strings.ToLower(rule.Pattern))
	case domain.PatternRegex:
		re, ok := compiled[rule.Pattern]
		if !ok {
			var err error
			re, err = regexp.Compile("(?i)" + rule.Pattern)
			if err != nil {
				re = nil
			}
			compiled[rule.Pattern] = re
		}
		if re == nil {
			return false
		}
		return re.MatchString(text)
	default:
		return false
	}
}

// apply copies the rule's targets onto the transaction.
func apply(tx domain.Transaction, rule domain.MappingRule) domain.Transaction {
	tx.Category = rule.Category
	tx.Subcategory = rule.Subcategory
	if rule.IncomeType != "" {
		tx.IncomeType = rule.IncomeType
	}
	return tx
}
