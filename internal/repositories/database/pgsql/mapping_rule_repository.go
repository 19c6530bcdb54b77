package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbook/bookkeeping_app/internal/core/ports/repositories"
	"github.com/finbook/bookkeeping_app/internal/models"
	"github.com/finbook/bookkeeping_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ruleColumns = `rule_id, context_id, pattern, pattern_type, match_field, category, subcategory, income_type, priority, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxMappingRuleRepository struct {
	BaseRepository
}

// newPgxMappingRuleRepository creates a new repository for mapping rule data.
func newPgxMappingRuleRepository(pool *pgxpool.Pool) portsrepo.MappingRuleRepositoryFacade {
	return &PgxMappingRuleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MappingRuleRepositoryFacade = (*PgxMappingRuleRepository)(nil)

func scanRule(row pgx.Row) (models.MappingRule, error) {
	var m models.MappingRule
	var incomeType *string
	err := row.Scan(
		&m.RuleID,
		&m.ContextID,
		&m.Pattern,
		&m.PatternType,
		&m.MatchField,
		&m.Category,
		&m.Subcategory,
		&incomeType,
		&m.Priority,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if incomeType != nil {
		m.IncomeType = *incomeType
	}
	return m, err
}

// SaveRule persists a new rule.
func (r *PgxMappingRuleRepository) SaveRule(ctx context.Context, rule domain.MappingRule) error {
	m := mapping.ToModelMappingRule(rule)

	query := `
		INSERT INTO mapping_rules (` + ruleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RuleID,
		m.ContextID,
		m.Pattern,
		m.PatternType,
		m.MatchField,
		m.Category,
		m.Subcategory,
		m.IncomeType,
		m.Priority,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save rule %s: %w", m.RuleID, err)
	}
	return nil
}

// UpdateRule overwrites an existing rule.
func (r *PgxMappingRuleRepository) UpdateRule(ctx context.Context, rule domain.MappingRule) error {
	m := mapping.ToModelMappingRule(rule)

	query := `
		UPDATE mapping_rules
		SET pattern = $2, pattern_type = $3, match_field = $4, category = $5, subcategory = $6,
			income_type = NULLIF($7, ''), priority = $8, is_active = $9, last_updated_at = $10, last_updated_by = $11
		WHERE rule_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RuleID,
		m.Pattern,
		m.PatternType,
		m.MatchField,
		m.Category,
		m.Subcategory,
		m.IncomeType,
		m.Priority,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update rule %s: %w", m.RuleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRule removes a rule permanently.
func (r *PgxMappingRuleRepository) DeleteRule(ctx context.Context, ruleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM mapping_rules WHERE rule_id = $1;`, ruleID)
	if err != nil {
		return fmt.Errorf("failed to delete rule %s: %w", ruleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindRuleByID retrieves a specific rule by its id.
func (r *PgxMappingRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.MappingRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM mapping_rules WHERE rule_id = $1;`

	m, err := scanRule(r.Pool.QueryRow(ctx, query, ruleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rule by id %s: %w", ruleID, err)
	}

	rule := mapping.ToDomainMappingRule(m)
	return &rule, nil
}

// ListRulesByContext retrieves all rules of a data context, ordered by
// priority descending then creation time.
func (r *PgxMappingRuleRepository) ListRulesByContext(ctx context.Context, contextID string) ([]domain.MappingRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM mapping_rules WHERE context_id = $1 ORDER BY priority DESC, created_at;`

	rows, err := r.Pool.Query(ctx, query, contextID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer rows.Close()

	modelRules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MappingRule, error) {
		return scanRule(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.MappingRule{}, nil
		}
		return nil, fmt.Errorf("failed to scan rules: %w", err)
	}

	return mapping.ToDomainMappingRuleSlice(modelRules), nil
}
