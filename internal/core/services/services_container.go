package services

import (
	portsrepo "github.com/finbook/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency first since accounts and reports depend on it
	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	container.Account = NewAccountService(
		repos.AccountRepo,
		WithCurrencyReader(repos.CurrencyRepo),
	)

	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo)
	container.MappingRule = NewMappingRuleService(repos.MappingRuleRepo, repos.TransactionRepo)
	container.Reconciliation = NewReconciliationService(repos.AccountRepo, repos.TransactionRepo, repos.ReconciliationRepo)
	container.Reporting = NewReportingService(repos.AccountRepo, repos.TransactionRepo, repos.CurrencyRepo)

	return container
}
