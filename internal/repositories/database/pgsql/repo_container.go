package pgsql

import (
	portsrepo "github.com/finbook/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:        newPgxAccountRepository(dbPool),
		TransactionRepo:    newPgxTransactionRepository(dbPool),
		MappingRuleRepo:    newPgxMappingRuleRepository(dbPool),
		ReconciliationRepo: newPgxReconciliationRepository(dbPool),
		CurrencyRepo:       newPgxCurrencyRepository(dbPool),
	}
}
