package services_test

import (
	"context"
	"testing"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/core/services"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  *services.CurrencyService
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "EUR",
		Symbol:       "€",
		Name:         "Euro",
		ExchangeRate: decimal.NewFromFloat(0.9),
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("EUR", currency.CurrencyCode)
	suite.True(currency.ExchangeRate.Equal(decimal.NewFromFloat(0.9)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_ZeroRateDefaultsToParity() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "CHF", Symbol: "CHF", Name: "Swiss Franc"}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "CHF").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.ExchangeRate.Equal(decimal.NewFromInt(1))
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.True(currency.ExchangeRate.Equal(decimal.NewFromInt(1)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(&domain.Currency{CurrencyCode: "EUR"}, nil).Once()

	_, err := suite.service.CreateCurrency(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NormalizesCase() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyCode: "EUR"}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "eur")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_BadLength() {
	ctx := context.Background()

	_, err := suite.service.GetCurrencyByCode(ctx, "EURO")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_RejectsNonPositiveRate() {
	ctx := context.Background()
	existing := &domain.Currency{CurrencyCode: "EUR", ExchangeRate: decimal.NewFromFloat(0.9)}
	zero := decimal.Zero

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(existing, nil).Once()

	_, err := suite.service.UpdateCurrency(ctx, "EUR", dto.UpdateCurrencyRequest{ExchangeRate: &zero}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_RateChange() {
	ctx := context.Background()
	existing := &domain.Currency{CurrencyCode: "EUR", ExchangeRate: decimal.NewFromFloat(0.9)}
	newRate := decimal.NewFromFloat(0.85)

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.ExchangeRate.Equal(newRate)
	})).Return(nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, "EUR", dto.UpdateCurrencyRequest{ExchangeRate: &newRate}, "user-1")

	suite.Require().NoError(err)
	suite.True(currency.ExchangeRate.Equal(newRate))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestEnsureDefaultCurrencies_SeedsUSDOnce() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "USD" && c.ExchangeRate.Equal(decimal.NewFromInt(1))
	})).Return(nil).Once()

	suite.Require().NoError(suite.service.EnsureDefaultCurrencies(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestEnsureDefaultCurrencies_NoopWhenPresent() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()

	suite.Require().NoError(suite.service.EnsureDefaultCurrencies(ctx))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
