package services_test

import (
	"context"
	"testing"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/core/services"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MappingRuleServiceTestSuite struct {
	suite.Suite
	mockRuleRepo *MockMappingRuleRepository
	mockTxRepo   *MockTransactionRepository
	service      portssvc.MappingRuleSvcFacade
}

func (suite *MappingRuleServiceTestSuite) SetupTest() {
	suite.mockRuleRepo = new(MockMappingRuleRepository)
	suite.mockTxRepo = new(MockTransactionRepository)
	suite.service = services.NewMappingRuleService(suite.mockRuleRepo, suite.mockTxRepo)
}

func (suite *MappingRuleServiceTestSuite) TestCreateRule_Success() {
	ctx := context.Background()
	req := dto.CreateMappingRuleRequest{
		ContextID:   "ctx-1",
		Pattern:     "starbucks",
		PatternType: "CONTAINS",
		MatchField:  "NAME",
		Category:    "EXPENSE",
		Subcategory: "Coffee",
		Priority:    5,
	}

	suite.mockRuleRepo.On("SaveRule", ctx, mock.AnythingOfType("domain.MappingRule")).Return(nil).Once()

	rule, err := suite.service.CreateRule(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(rule.RuleID)
	suite.Equal(domain.PatternContains, rule.PatternType)
	suite.Equal(5, rule.Priority)
	suite.True(rule.IsActive, "IsActive must default to true when omitted")
	suite.Equal("user-1", rule.CreatedBy)
	suite.mockRuleRepo.AssertExpectations(suite.T())
}

func (suite *MappingRuleServiceTestSuite) TestCreateRule_ExplicitlyInactive() {
	ctx := context.Background()
	inactive := false
	req := dto.CreateMappingRuleRequest{
		ContextID:   "ctx-1",
		Pattern:     "amazon",
		PatternType: "CONTAINS",
		MatchField:  "NAME",
		Category:    "EXPENSE",
		IsActive:    &inactive,
	}

	suite.mockRuleRepo.On("SaveRule", ctx, mock.MatchedBy(func(r domain.MappingRule) bool {
		return !r.IsActive
	})).Return(nil).Once()

	rule, err := suite.service.CreateRule(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.False(rule.IsActive)
	suite.mockRuleRepo.AssertExpectations(suite.T())
}

func (suite *MappingRuleServiceTestSuite) TestCreateRule_InvalidRegexRejected() {
	ctx := context.Background()
	req := dto.CreateMappingRuleRequest{
		ContextID:   "ctx-1",
		Pattern:     "a[",
		PatternType: "REGEX",
		MatchField:  "NAME",
		Category:    "EXPENSE",
	}

	_, err := suite.service.CreateRule(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "SaveRule", mock.Anything, mock.Anything)
}

func (suite *MappingRuleServiceTestSuite) TestUpdateRule_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.MappingRule{
		RuleID:      "rule-1",
		Pattern:     "amazon",
		PatternType: domain.PatternContains,
		MatchField:  domain.MatchName,
		Category:    domain.CategoryExpense,
		Priority:    1,
		IsActive:    true,
	}
	newPriority := 10

	suite.mockRuleRepo.On("FindRuleByID", ctx, "rule-1").Return(existing, nil).Once()
	suite.mockRuleRepo.On("UpdateRule", ctx, mock.MatchedBy(func(r domain.MappingRule) bool {
		return r.Priority == 10 && r.Pattern == "amazon"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateRule(ctx, "rule-1", dto.UpdateMappingRuleRequest{Priority: &newPriority}, "user-2")

	suite.Require().NoError(err)
	suite.Equal(10, updated.Priority)
	suite.Equal("user-2", updated.LastUpdatedBy)
	suite.mockRuleRepo.AssertExpectations(suite.T())
}

func (suite *MappingRuleServiceTestSuite) TestUpdateRule_SwitchToBrokenRegexRejected() {
	ctx := context.Background()
	existing := &domain.MappingRule{
		RuleID:      "rule-1",
		Pattern:     "a[",
		PatternType: domain.PatternContains,
	}
	regexType := "REGEX"

	suite.mockRuleRepo.On("FindRuleByID", ctx, "rule-1").Return(existing, nil).Once()

	_, err := suite.service.UpdateRule(ctx, "rule-1", dto.UpdateMappingRuleRequest{PatternType: &regexType}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "UpdateRule", mock.Anything, mock.Anything)
}

func (suite *MappingRuleServiceTestSuite) TestApplyRules_CategorizesAndPersists() {
	ctx := context.Background()
	rules := []domain.MappingRule{
		{RuleID: "r1", Pattern: "salary", PatternType: domain.PatternContains, MatchField: domain.MatchName, Category: domain.CategoryIncome, Priority: 1, IsActive: true},
	}
	txs := []domain.Transaction{
		{TransactionID: "t1", Name: "SALARY ACME", Category: domain.CategoryUncategorized},
		{TransactionID: "t2", Name: "UNKNOWN VENDOR", Category: domain.CategoryUncategorized},
	}

	suite.mockRuleRepo.On("ListRulesByContext", ctx, "ctx-1").Return(rules, nil).Once()
	suite.mockTxRepo.On("ListUncategorizedByContext", ctx, "ctx-1").Return(txs, nil).Once()
	suite.mockTxRepo.On("UpdateTransactions", ctx, mock.MatchedBy(func(updated []domain.Transaction) bool {
		return len(updated) == 1 && updated[0].TransactionID == "t1" &&
			updated[0].Category == domain.CategoryIncome && updated[0].LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	resp, err := suite.service.ApplyRules(ctx, "ctx-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(1, resp.Count)
	suite.Require().Len(resp.Categorized, 1)
	suite.Equal("t1", resp.Categorized[0].TransactionID)
	suite.mockRuleRepo.AssertExpectations(suite.T())
	suite.mockTxRepo.AssertExpectations(suite.T())
}

func (suite *MappingRuleServiceTestSuite) TestApplyRules_NothingMatchedSkipsPersist() {
	ctx := context.Background()
	rules := []domain.MappingRule{
		{RuleID: "r1", Pattern: "salary", PatternType: domain.PatternContains, MatchField: domain.MatchName, Category: domain.CategoryIncome, IsActive: true},
	}
	txs := []domain.Transaction{
		{TransactionID: "t1", Name: "UNKNOWN VENDOR", Category: domain.CategoryUncategorized},
	}

	suite.mockRuleRepo.On("ListRulesByContext", ctx, "ctx-1").Return(rules, nil).Once()
	suite.mockTxRepo.On("ListUncategorizedByContext", ctx, "ctx-1").Return(txs, nil).Once()

	resp, err := suite.service.ApplyRules(ctx, "ctx-1", "user-1")

	suite.Require().NoError(err)
	suite.Zero(resp.Count)
	suite.Empty(resp.Categorized)
	suite.mockTxRepo.AssertNotCalled(suite.T(), "UpdateTransactions", mock.Anything, mock.Anything)
}

func (suite *MappingRuleServiceTestSuite) TestDeleteRule() {
	ctx := context.Background()

	suite.mockRuleRepo.On("DeleteRule", ctx, "rule-1").Return(nil).Once()

	err := suite.service.DeleteRule(ctx, "rule-1")

	suite.Require().NoError(err)
	suite.mockRuleRepo.AssertExpectations(suite.T())
}

func TestMappingRuleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MappingRuleServiceTestSuite))
}
