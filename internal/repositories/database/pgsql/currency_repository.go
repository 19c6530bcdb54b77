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

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts or updates a currency (primarily for initial setup).
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (currency_code, symbol, name, exchange_rate, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (currency_code) DO UPDATE SET
			symbol = EXCLUDED.symbol,
			name = EXCLUDED.name,
			exchange_rate = EXCLUDED.exchange_rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Symbol,
		modelCurr.Name,
		modelCurr.ExchangeRate,
		modelCurr.CreatedAt,
		modelCurr.CreatedBy,
		modelCurr.LastUpdatedAt,
		modelCurr.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.CurrencyCode, err)
	}
	return nil
}

// UpdateCurrency overwrites the mutable fields of an existing currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		UPDATE currencies
		SET symbol = $2, name = $3, exchange_rate = $4, last_updated_at = $5, last_updated_by = $6
		WHERE currency_code = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Symbol,
		modelCurr.Name,
		modelCurr.ExchangeRate,
		modelCurr.LastUpdatedAt,
		modelCurr.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update currency %s: %w", modelCurr.CurrencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCurrency removes a currency permanently.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyCode string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currencies WHERE currency_code = $1;`, currencyCode)
	if err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", currencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT currency_code, symbol, name, exchange_rate, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		WHERE currency_code = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(
		&modelCurr.CurrencyCode,
		&modelCurr.Symbol,
		&modelCurr.Name,
		&modelCurr.ExchangeRate,
		&modelCurr.CreatedAt,
		&modelCurr.CreatedBy,
		&modelCurr.LastUpdatedAt,
		&modelCurr.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, symbol, name, exchange_rate, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyCode,
			&currency.Symbol,
			&currency.Name,
			&currency.ExchangeRate,
			&currency.CreatedAt,
			&currency.CreatedBy,
			&currency.LastUpdatedAt,
			&currency.LastUpdatedBy,
		)
		return currency, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Currency{}, nil
		}
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
