package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbook/bookkeeping_app/internal/core/ports/repositories"
	"github.com/finbook/bookkeeping_app/internal/models"
	"github.com/finbook/bookkeeping_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reconciliationColumns = `reconciliation_id, account_id, reconciled_date, expected_balance, actual_balance, adjustment_amount, adjustment_transaction_id, notes, created_at, created_by`

// PgxReconciliationRepository persists reconciliation audit records. The
// table is insert-only; there is no update or delete path.
type PgxReconciliationRepository struct {
	BaseRepository
}

// newPgxReconciliationRepository creates a new repository for reconciliation audit records.
func newPgxReconciliationRepository(pool *pgxpool.Pool) portsrepo.ReconciliationRepositoryFacade {
	return &PgxReconciliationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReconciliationRepositoryFacade = (*PgxReconciliationRepository)(nil)

// SaveReconciliation persists a new audit record.
func (r *PgxReconciliationRepository) SaveReconciliation(ctx context.Context, rec domain.Reconciliation) error {
	m := mapping.ToModelReconciliation(rec)

	query := `
		INSERT INTO reconciliations (` + reconciliationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReconciliationID,
		m.AccountID,
		m.ReconciledDate,
		m.ExpectedBalance,
		m.ActualBalance,
		m.AdjustmentAmount,
		m.AdjustmentTransactionID,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save reconciliation %s: %w", m.ReconciliationID, err)
	}
	return nil
}

// ListReconciliationsByAccount retrieves an account's reconciliation history,
// newest first.
func (r *PgxReconciliationRepository) ListReconciliationsByAccount(ctx context.Context, accountID string) ([]domain.Reconciliation, error) {
	query := `SELECT ` + reconciliationColumns + ` FROM reconciliations WHERE account_id = $1 ORDER BY reconciled_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reconciliations: %w", err)
	}
	defer rows.Close()

	modelRecs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Reconciliation, error) {
		var m models.Reconciliation
		var adjTxID *string
		err := row.Scan(
			&m.ReconciliationID,
			&m.AccountID,
			&m.ReconciledDate,
			&m.ExpectedBalance,
			&m.ActualBalance,
			&m.AdjustmentAmount,
			&adjTxID,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if adjTxID != nil {
			m.AdjustmentTransactionID = *adjTxID
		}
		return m, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Reconciliation{}, nil
		}
		return nil, fmt.Errorf("failed to scan reconciliations: %w", err)
	}

	return mapping.ToDomainReconciliationSlice(modelRecs), nil
}
