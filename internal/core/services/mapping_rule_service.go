package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbook/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/finbook/bookkeeping_app/internal/utils/categorize"
	"github.com/google/uuid"
)

// mappingRuleService implements the MappingRuleSvcFacade interface
type mappingRuleService struct {
	BaseService
	ruleRepo portsrepo.MappingRuleRepositoryFacade
	txRepo   portsrepo.TransactionRepositoryFacade
}

// NewMappingRuleService creates a new mapping rule service.
func NewMappingRuleService(ruleRepo portsrepo.MappingRuleRepositoryFacade, txRepo portsrepo.TransactionRepositoryFacade) portssvc.MappingRuleSvcFacade {
	return &mappingRuleService{ruleRepo: ruleRepo, txRepo: txRepo}
}

// Ensure mappingRuleService implements the service facade
var _ portssvc.MappingRuleSvcFacade = (*mappingRuleService)(nil)

// CreateRule persists a new categorization rule. Regex patterns are compiled
// up front so an unusable pattern is rejected at creation instead of being
// silently skipped at apply time.
func (s *mappingRuleService) CreateRule(ctx context.Context, req dto.CreateMappingRuleRequest, creatorUserID string) (*domain.MappingRule, error) {
	if domain.PatternType(req.PatternType) == domain.PatternRegex {
		if _, err := regexp.Compile("(?i)" + req.Pattern); err != nil {
			return nil, fmt.Errorf("%w: invalid regex pattern: %v", apperrors.ErrValidation, err)
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	rule := domain.MappingRule{
		RuleID:      uuid.NewString(),
		ContextID:   req.ContextID,
		Pattern:     req.Pattern,
		PatternType: domain.PatternType(req.PatternType),
		MatchField:  domain.MatchField(req.MatchField),
		Category:    domain.Category(req.Category),
		Subcategory: req.Subcategory,
		IncomeType:  domain.IncomeType(req.IncomeType),
		Priority:    req.Priority,
		IsActive:    isActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.ruleRepo.SaveRule(ctx, rule); err != nil {
		s.LogError(ctx, err, "Failed to save mapping rule", slog.String("context_id", req.ContextID))
		return nil, fmt.Errorf("failed to save rule in service: %w", err)
	}
	return &rule, nil
}

// GetRuleByID retrieves a specific rule.
func (s *mappingRuleService) GetRuleByID(ctx context.Context, ruleID string) (*domain.MappingRule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rule in service: %w", err)
	}
	return rule, nil
}

// ListRules retrieves all rules of a context, priority descending.
func (s *mappingRuleService) ListRules(ctx context.Context, contextID string) ([]domain.MappingRule, error) {
	rules, err := s.ruleRepo.ListRulesByContext(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules in service: %w", err)
	}
	return rules, nil
}

// UpdateRule applies the non-nil fields of req to an existing rule.
func (s *mappingRuleService) UpdateRule(ctx context.Context, ruleID string, req dto.UpdateMappingRuleRequest, updaterUserID string) (*domain.MappingRule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find rule for update: %w", err)
	}

	if req.Pattern != nil {
		rule.Pattern = *req.Pattern
	}
	if req.PatternType != nil {
		rule.PatternType = domain.PatternType(*req.PatternType)
	}
	if rule.PatternType == domain.PatternRegex {
		if _, err := regexp.Compile("(?i)" + rule.Pattern); err != nil {
			return nil, fmt.Errorf("%w: invalid regex pattern: %v", apperrors.ErrValidation, err)
		}
	}
	if req.MatchField != nil {
		rule.MatchField = domain.MatchField(*req.MatchField)
	}
	if req.Category != nil {
		rule.Category = domain.Category(*req.Category)
	}
	if req.Subcategory != nil {
		rule.Subcategory = *req.Subcategory
	}
	if req.IncomeType != nil {
		rule.IncomeType = domain.IncomeType(*req.IncomeType)
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	rule.LastUpdatedAt = time.Now()
	rule.LastUpdatedBy = updaterUserID

	if err := s.ruleRepo.UpdateRule(ctx, *rule); err != nil {
		s.LogError(ctx, err, "Failed to update mapping rule", slog.String("rule_id", ruleID))
		return nil, fmt.Errorf("failed to update rule in service: %w", err)
	}
	return rule, nil
}

// DeleteRule removes a rule permanently. Transactions the rule already
// categorized keep their assignment.
func (s *mappingRuleService) DeleteRule(ctx context.Context, ruleID string) error {
	if err := s.ruleRepo.DeleteRule(ctx, ruleID); err != nil {
		return fmt.Errorf("failed to delete rule in service: %w", err)
	}
	s.LogInfo(ctx, "Mapping rule deleted", slog.String("rule_id", ruleID))
	return nil
}

// ApplyRules runs the active rules of a context over its uncategorized
// transactions and persists the ones that matched. Applying rules is
// idempotent because only uncategorized transactions are considered.
func (s *mappingRuleService) ApplyRules(ctx context.Context, contextID, userID string) (*dto.ApplyRulesResponse, error) {
	rules, err := s.ruleRepo.ListRulesByContext(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules for apply: %w", err)
	}

	txs, err := s.txRepo.ListUncategorizedByContext(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("failed to load uncategorized transactions: %w", err)
	}

	result := categorize.ApplyRules(txs, rules)
	if result.Count == 0 {
		return &dto.ApplyRulesResponse{Count: 0, Categorized: []dto.TransactionResponse{}}, nil
	}

	now := time.Now()
	for i := range result.Categorized {
		result.Categorized[i].LastUpdatedAt = now
		result.Categorized[i].LastUpdatedBy = userID
	}

	if err := s.txRepo.UpdateTransactions(ctx, result.Categorized); err != nil {
		s.LogError(ctx, err, "Failed to persist categorized transactions",
			slog.String("context_id", contextID), slog.Int("count", result.Count))
		return nil, fmt.Errorf("failed to persist categorized transactions: %w", err)
	}

	s.LogInfo(ctx, "Mapping rules applied",
		slog.String("context_id", contextID),
		slog.Int("rules", len(rules)),
		slog.Int("categorized", result.Count))

	return &dto.ApplyRulesResponse{
		Count:       result.Count,
		Categorized: dto.ToListTransactionResponse(result.Categorized),
	}, nil
}
