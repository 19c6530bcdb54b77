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

const accountColumns = `account_id, context_id, name, account_type, currency_code, balance, balance_date, account_id_hash, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for bank account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(
		&m.AccountID,
		&m.ContextID,
		&m.Name,
		&m.AccountType,
		&m.CurrencyCode,
		&m.Balance,
		&m.BalanceDate,
		&m.AccountIDHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAccount persists a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.ContextID,
		m.Name,
		m.AccountType,
		m.CurrencyCode,
		m.Balance,
		m.BalanceDate,
		m.AccountIDHash,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// UpdateAccount overwrites the mutable fields of an existing account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, balance = $3, balance_date = $4, last_updated_at = $5, last_updated_by = $6
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Balance,
		m.BalanceDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account permanently.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountByID retrieves a specific account by its id.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by id %s: %w", accountID, err)
	}

	account := mapping.ToDomainBankAccount(m)
	return &account, nil
}

// FindAccountByHash retrieves an account by its statement identity hash.
func (r *PgxAccountRepository) FindAccountByHash(ctx context.Context, contextID, accountIDHash string) (*domain.BankAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE context_id = $1 AND account_id_hash = $2;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, contextID, accountIDHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by hash: %w", err)
	}

	account := mapping.ToDomainBankAccount(m)
	return &account, nil
}

// ListAccountsByContext retrieves all accounts of a data context.
func (r *PgxAccountRepository) ListAccountsByContext(ctx context.Context, contextID string) ([]domain.BankAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE context_id = $1 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, contextID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BankAccount, error) {
		return scanAccount(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.BankAccount{}, nil
		}
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}

	return mapping.ToDomainBankAccountSlice(modelAccounts), nil
}
