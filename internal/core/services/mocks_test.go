package services_test

import (
	"context"

	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByHash(ctx context.Context, contextID, accountIDHash string) (*domain.BankAccount, error) {
	args := m.Called(ctx, contextID, accountIDHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByContext(ctx context.Context, contextID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, contextID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByContext(ctx context.Context, contextID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, contextID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListUncategorizedByContext(ctx context.Context, contextID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, contextID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByImportKey(ctx context.Context, accountID, fitID string) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, fitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction, fitID string) error {
	args := m.Called(ctx, tx, fitID)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveTransactions(ctx context.Context, txs []domain.Transaction, fitIDs []string) error {
	args := m.Called(ctx, txs, fitIDs)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, tx domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactions(ctx context.Context, txs []domain.Transaction) error {
	args := m.Called(ctx, txs)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// MockMappingRuleRepository is a mock type for the MappingRuleRepositoryFacade interface
type MockMappingRuleRepository struct {
	mock.Mock
}

func (m *MockMappingRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.MappingRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MappingRule), args.Error(1)
}

func (m *MockMappingRuleRepository) ListRulesByContext(ctx context.Context, contextID string) ([]domain.MappingRule, error) {
	args := m.Called(ctx, contextID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MappingRule), args.Error(1)
}

func (m *MockMappingRuleRepository) SaveRule(ctx context.Context, rule domain.MappingRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockMappingRuleRepository) UpdateRule(ctx context.Context, rule domain.MappingRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockMappingRuleRepository) DeleteRule(ctx context.Context, ruleID string) error {
	args := m.Called(ctx, ruleID)
	return args.Error(0)
}

// MockReconciliationRepository is a mock type for the ReconciliationRepositoryFacade interface
type MockReconciliationRepository struct {
	mock.Mock
}

func (m *MockReconciliationRepository) ListReconciliationsByAccount(ctx context.Context, accountID string) ([]domain.Reconciliation, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) SaveReconciliation(ctx context.Context, rec domain.Reconciliation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

// MockCurrencyRepository is a mock type for the CurrencyRepositoryFacade interface
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyCode string) error {
	args := m.Called(ctx, currencyCode)
	return args.Error(0)
}
