package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbook/bookkeeping_app/internal/core/ports/repositories"
	"github.com/finbook/bookkeeping_app/internal/models"
	"github.com/finbook/bookkeeping_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, account_id, date, amount, name, memo, category, subcategory, income_type, fiscal_year, import_batch_id, created_at, created_by, last_updated_at, last_updated_by`

// prefixedTransactionColumns qualifies the column list with a table alias for
// use in joined queries.
func prefixedTransactionColumns(alias string) string {
	cols := strings.Split(transactionColumns, ", ")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

const insertTransactionSQL = `
	INSERT INTO transactions (` + transactionColumns + `, fit_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12, $13, $14, $15, NULLIF($16, ''));
`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	var incomeType *string
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.Date,
		&m.Amount,
		&m.Name,
		&m.Memo,
		&m.Category,
		&m.Subcategory,
		&incomeType,
		&m.FiscalYear,
		&m.ImportBatchID,
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

func insertArgs(m models.Transaction, fitID string) []any {
	return []any{
		m.TransactionID,
		m.AccountID,
		m.Date,
		m.Amount,
		m.Name,
		m.Memo,
		m.Category,
		m.Subcategory,
		m.IncomeType,
		m.FiscalYear,
		m.ImportBatchID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		fitID,
	}
}

// SaveTransaction persists a new transaction. fitID may be empty for
// transactions that did not originate from a statement import.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction, fitID string) error {
	m := mapping.ToModelTransaction(tx)
	_, err := r.Pool.Exec(ctx, insertTransactionSQL, insertArgs(m, fitID)...)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// SaveTransactions persists a batch of new transactions atomically. A failure
// on any row rolls back the whole batch.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txs []domain.Transaction, fitIDs []string) error {
	if len(txs) != len(fitIDs) {
		return fmt.Errorf("%w: transaction and fitID counts differ", apperrors.ErrValidation)
	}
	if len(txs) == 0 {
		return nil
	}

	dbTx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, dbTx) }()

	for i, tx := range txs {
		m := mapping.ToModelTransaction(tx)
		if _, err := dbTx.Exec(ctx, insertTransactionSQL, insertArgs(m, fitIDs[i])...); err != nil {
			return fmt.Errorf("failed to save transaction %s in batch: %w", m.TransactionID, err)
		}
	}

	return r.Commit(ctx, dbTx)
}

const updateTransactionSQL = `
	UPDATE transactions
	SET memo = $2, category = $3, subcategory = $4, income_type = NULLIF($5, ''), fiscal_year = $6, last_updated_at = $7, last_updated_by = $8
	WHERE transaction_id = $1;
`

func updateArgs(m models.Transaction) []any {
	return []any{
		m.TransactionID,
		m.Memo,
		m.Category,
		m.Subcategory,
		m.IncomeType,
		m.FiscalYear,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

// UpdateTransaction overwrites the mutable fields of an existing transaction.
// The bank-posted date and amount are immutable.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, tx domain.Transaction) error {
	m := mapping.ToModelTransaction(tx)
	tag, err := r.Pool.Exec(ctx, updateTransactionSQL, updateArgs(m)...)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateTransactions overwrites a batch of existing transactions atomically.
func (r *PgxTransactionRepository) UpdateTransactions(ctx context.Context, txs []domain.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	dbTx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, dbTx) }()

	for _, tx := range txs {
		m := mapping.ToModelTransaction(tx)
		tag, err := dbTx.Exec(ctx, updateTransactionSQL, updateArgs(m)...)
		if err != nil {
			return fmt.Errorf("failed to update transaction %s in batch: %w", m.TransactionID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, m.TransactionID)
		}
	}

	return r.Commit(ctx, dbTx)
}

// DeleteTransaction removes a transaction permanently.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindTransactionByID retrieves a single transaction.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by id %s: %w", transactionID, err)
	}

	tx := mapping.ToDomainTransaction(m)
	return &tx, nil
}

// FindByImportKey retrieves a transaction by its statement import key.
func (r *PgxTransactionRepository) FindByImportKey(ctx context.Context, accountID, fitID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1 AND fit_id = $2;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, accountID, fitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by import key: %w", err)
	}

	tx := mapping.ToDomainTransaction(m)
	return &tx, nil
}

func (r *PgxTransactionRepository) listByQuery(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxs), nil
}

// ListTransactionsByAccount retrieves every transaction for one account.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1 ORDER BY date DESC, created_at DESC;`
	return r.listByQuery(ctx, query, accountID)
}

// ListTransactionsByContext retrieves every transaction across all accounts
// of a data context.
func (r *PgxTransactionRepository) ListTransactionsByContext(ctx context.Context, contextID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + prefixedTransactionColumns("t") + `
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.context_id = $1
		ORDER BY t.date DESC, t.created_at DESC;
	`
	return r.listByQuery(ctx, query, contextID)
}

// ListUncategorizedByContext retrieves the transactions still awaiting a category.
func (r *PgxTransactionRepository) ListUncategorizedByContext(ctx context.Context, contextID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + prefixedTransactionColumns("t") + `
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.context_id = $1 AND t.category = 'UNCATEGORIZED'
		ORDER BY t.date DESC, t.created_at DESC;
	`
	return r.listByQuery(ctx, query, contextID)
}
