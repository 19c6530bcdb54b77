package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/core/services"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxRepo      *MockTransactionRepository
	mockReconRepo   *MockReconciliationRepository
	service         portssvc.ReconciliationSvc
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxRepo = new(MockTransactionRepository)
	suite.mockReconRepo = new(MockReconciliationRepository)
	suite.service = services.NewReconciliationService(suite.mockAccountRepo, suite.mockTxRepo, suite.mockReconRepo)
}

func (suite *ReconciliationServiceTestSuite) testAccount() *domain.BankAccount {
	return &domain.BankAccount{
		AccountID:   "acc-1",
		ContextID:   "ctx-1",
		Balance:     decimal.NewFromInt(1000),
		BalanceDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *ReconciliationServiceTestSuite) TestGetExpectedBalance() {
	ctx := context.Background()
	account := suite.testAccount()
	txs := []domain.Transaction{
		{AccountID: "acc-1", Date: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(-100)},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockTxRepo.On("ListTransactionsByAccount", ctx, "acc-1").Return(txs, nil).Once()

	got, err := suite.service.GetExpectedBalance(ctx, "acc-1", time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.True(got.Equal(decimal.NewFromInt(900)), "got %s", got)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestPerformReconciliation_UnknownAccountIsStructuredFailure() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.PerformReconciliation(ctx, "ghost", dto.PerformReconciliationRequest{
		ReconciledDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		ActualBalance:  decimal.NewFromInt(500),
	}, "user-1")

	suite.Require().NoError(err, "an unknown account must not surface as an error")
	suite.Require().NotNil(result)
	suite.False(result.Success)
	suite.Contains(result.Message, "ghost")
	suite.Nil(result.Reconciliation)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "SaveReconciliation", mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestPerformReconciliation_BalanceMatches() {
	ctx := context.Background()
	account := suite.testAccount()
	reconciledDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockTxRepo.On("FindTransactionByID", ctx, "adj-acc-1-2025-06-30").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTxRepo.On("ListTransactionsByAccount", ctx, "acc-1").Return([]domain.Transaction{}, nil).Once()
	suite.mockReconRepo.On("SaveReconciliation", ctx, mock.MatchedBy(func(rec domain.Reconciliation) bool {
		return rec.AdjustmentAmount.IsZero() && rec.AdjustmentTransactionID == ""
	})).Return(nil).Once()

	result, err := suite.service.PerformReconciliation(ctx, "acc-1", dto.PerformReconciliationRequest{
		ReconciledDate:   reconciledDate,
		ActualBalance:    decimal.NewFromInt(1000),
		CreateAdjustment: true,
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.Contains(result.Message, "no adjustment needed")
	suite.Nil(result.AdjustmentTransaction)
	suite.Require().NotNil(result.Reconciliation)
	suite.True(result.Reconciliation.ExpectedBalance.Equal(decimal.NewFromInt(1000)))

	// The audit record is written even when nothing changed.
	suite.mockReconRepo.AssertExpectations(suite.T())
	suite.mockTxRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestPerformReconciliation_CreatesAdjustment() {
	ctx := context.Background()
	account := suite.testAccount()
	reconciledDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	txs := []domain.Transaction{
		{AccountID: "acc-1", Date: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(-200)},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockTxRepo.On("FindTransactionByID", ctx, "adj-acc-1-2025-06-30").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTxRepo.On("ListTransactionsByAccount", ctx, "acc-1").Return(txs, nil).Once()
	// Expected is 800; the bank says 750, so the adjustment is -50.
	suite.mockTxRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(tx domain.Transaction) bool {
		return tx.TransactionID == "adj-acc-1-2025-06-30" &&
			tx.Category == domain.CategoryAdjustment &&
			tx.Amount.Equal(decimal.NewFromInt(-50))
	}), "").Return(nil).Once()
	suite.mockReconRepo.On("SaveReconciliation", ctx, mock.MatchedBy(func(rec domain.Reconciliation) bool {
		return rec.AdjustmentTransactionID == "adj-acc-1-2025-06-30" &&
			rec.ExpectedBalance.Equal(decimal.NewFromInt(800)) &&
			rec.AdjustmentAmount.Equal(decimal.NewFromInt(-50))
	})).Return(nil).Once()

	result, err := suite.service.PerformReconciliation(ctx, "acc-1", dto.PerformReconciliationRequest{
		ReconciledDate:   reconciledDate,
		ActualBalance:    decimal.NewFromInt(750),
		CreateAdjustment: true,
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.Contains(result.Message, "adjusted by -50")
	suite.Require().NotNil(result.AdjustmentTransaction)

	// After the adjustment the books project to the confirmed balance.
	corrected := append(txs, *result.AdjustmentTransaction)
	projected := decimal.NewFromInt(1000)
	for _, tx := range corrected {
		if tx.Date.After(account.BalanceDate) && !tx.Date.After(reconciledDate) {
			projected = projected.Add(tx.Amount)
		}
	}
	suite.True(projected.Equal(decimal.NewFromInt(750)), "projected %s", projected)

	suite.mockTxRepo.AssertExpectations(suite.T())
	suite.mockReconRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestPerformReconciliation_DiscrepancyWithoutAdjustment() {
	ctx := context.Background()
	account := suite.testAccount()

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockTxRepo.On("ListTransactionsByAccount", ctx, "acc-1").Return([]domain.Transaction{}, nil).Once()
	suite.mockReconRepo.On("SaveReconciliation", ctx, mock.MatchedBy(func(rec domain.Reconciliation) bool {
		return rec.AdjustmentAmount.Equal(decimal.NewFromInt(100)) && rec.AdjustmentTransactionID == ""
	})).Return(nil).Once()

	result, err := suite.service.PerformReconciliation(ctx, "acc-1", dto.PerformReconciliationRequest{
		ReconciledDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		ActualBalance:    decimal.NewFromInt(1100),
		CreateAdjustment: false,
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.Contains(result.Message, "no adjustment created")
	suite.Nil(result.AdjustmentTransaction)
	suite.mockTxRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
	suite.mockReconRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestPerformReconciliation_ReportOnlyKeepsPriorAdjustment() {
	ctx := context.Background()
	account := suite.testAccount()
	prior := domain.Transaction{
		TransactionID: "adj-acc-1-2025-06-30",
		AccountID:     "acc-1",
		Date:          time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(-25),
		Category:      domain.CategoryAdjustment,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockTxRepo.On("ListTransactionsByAccount", ctx, "acc-1").Return([]domain.Transaction{prior}, nil).Once()
	suite.mockReconRepo.On("SaveReconciliation", ctx, mock.MatchedBy(func(rec domain.Reconciliation) bool {
		// Drift is measured on the corrected books: 1000 - 25 = 975.
		return rec.ExpectedBalance.Equal(decimal.NewFromInt(975)) &&
			rec.AdjustmentAmount.Equal(decimal.NewFromInt(25)) &&
			rec.AdjustmentTransactionID == ""
	})).Return(nil).Once()

	result, err := suite.service.PerformReconciliation(ctx, "acc-1", dto.PerformReconciliationRequest{
		ReconciledDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		ActualBalance:    decimal.NewFromInt(1000),
		CreateAdjustment: false,
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.Contains(result.Message, "no adjustment created")

	// A report-only run must never touch the earlier correction.
	suite.mockTxRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
	suite.mockTxRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
	suite.mockReconRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestPerformReconciliation_SupersedesPriorAdjustment() {
	ctx := context.Background()
	account := suite.testAccount()
	prior := &domain.Transaction{
		TransactionID: "adj-acc-1-2025-06-30",
		AccountID:     "acc-1",
		Category:      domain.CategoryAdjustment,
		Amount:        decimal.NewFromInt(-25),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockTxRepo.On("FindTransactionByID", ctx, "adj-acc-1-2025-06-30").Return(prior, nil).Once()
	suite.mockTxRepo.On("DeleteTransaction", ctx, "adj-acc-1-2025-06-30").Return(nil).Once()
	suite.mockTxRepo.On("ListTransactionsByAccount", ctx, "acc-1").Return([]domain.Transaction{}, nil).Once()
	suite.mockTxRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), "").Return(nil).Once()
	suite.mockReconRepo.On("SaveReconciliation", ctx, mock.AnythingOfType("domain.Reconciliation")).Return(nil).Once()

	result, err := suite.service.PerformReconciliation(ctx, "acc-1", dto.PerformReconciliationRequest{
		ReconciledDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		ActualBalance:    decimal.NewFromInt(950),
		CreateAdjustment: true,
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.mockTxRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestListReconciliations() {
	ctx := context.Background()
	recs := []domain.Reconciliation{
		{ReconciliationID: "rec-2", AccountID: "acc-1"},
		{ReconciliationID: "rec-1", AccountID: "acc-1"},
	}

	suite.mockReconRepo.On("ListReconciliationsByAccount", ctx, "acc-1").Return(recs, nil).Once()

	got, err := suite.service.ListReconciliations(ctx, "acc-1")

	suite.Require().NoError(err)
	suite.Equal(recs, got)
	suite.mockReconRepo.AssertExpectations(suite.T())
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
