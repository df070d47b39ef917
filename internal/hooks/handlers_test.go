package hooks_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/omnibuskit/price_history_app/internal/apperrors"
	"github.com/omnibuskit/price_history_app/internal/core/domain"
	"github.com/omnibuskit/price_history_app/internal/hooks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PriceRecorder ---
type MockPriceRecorder struct {
	mock.Mock
}

func (m *MockPriceRecorder) RecordPriceChange(ctx context.Context, variantID string, price decimal.Decimal, currencyCode string) (*domain.PriceHistoryRecord, error) {
	args := m.Called(ctx, variantID, price, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceHistoryRecord), args.Error(1)
}

// --- Test Suite ---
type HooksTestSuite struct {
	suite.Suite
	recorder   *MockPriceRecorder
	dispatcher *hooks.MuxDispatcher
}

func (suite *HooksTestSuite) SetupTest() {
	suite.recorder = new(MockPriceRecorder)
	suite.dispatcher = hooks.NewMuxDispatcher()
	hooks.Register(suite.dispatcher, suite.recorder, slog.Default())
}

func (suite *HooksTestSuite) record(variantID, amount, currency string) *domain.PriceHistoryRecord {
	return &domain.PriceHistoryRecord{
		ID:           "rec_" + variantID + "_" + currency,
		VariantID:    variantID,
		Price:        decimal.RequireFromString(amount),
		CurrencyCode: currency,
	}
}

func (suite *HooksTestSuite) TestProductsCreated_RecordsEveryPriceOfEveryVariant() {
	ctx := context.Background()
	payload := json.RawMessage(`{
		"products": [
			{
				"id": "prod_1",
				"variants": [
					{"id": "var_1", "price_set": {"id": "ps_1", "prices": [
						{"amount": "10.00", "currency_code": "EUR"},
						{"amount": "11.50", "currency_code": "USD"}
					]}},
					{"id": "var_2", "price_set": {"id": "ps_2", "prices": [
						{"amount": "20.00", "currency_code": "EUR"}
					]}}
				]
			}
		]
	}`)

	suite.recorder.On("RecordPriceChange", ctx, "var_1", mock.MatchedBy(func(p decimal.Decimal) bool {
		return p.Equal(decimal.RequireFromString("10.00"))
	}), "EUR").Return(suite.record("var_1", "10.00", "EUR"), nil).Once()
	suite.recorder.On("RecordPriceChange", ctx, "var_1", mock.MatchedBy(func(p decimal.Decimal) bool {
		return p.Equal(decimal.RequireFromString("11.50"))
	}), "USD").Return(suite.record("var_1", "11.50", "USD"), nil).Once()
	suite.recorder.On("RecordPriceChange", ctx, "var_2", mock.Anything, "EUR").
		Return(suite.record("var_2", "20.00", "EUR"), nil).Once()

	result, err := suite.dispatcher.Dispatch(ctx, hooks.EventProductsCreated, payload)

	suite.Require().NoError(err)
	suite.Equal(3, result.Recorded)
	suite.Empty(result.Failures)
	suite.recorder.AssertExpectations(suite.T())
}

func (suite *HooksTestSuite) TestVariantsCreated_SkipsVariantsWithoutPriceSet() {
	ctx := context.Background()
	payload := json.RawMessage(`{
		"product_variants": [
			{"id": "var_priced", "price_set": {"id": "ps", "prices": [{"amount": "7.99", "currency_code": "EUR"}]}},
			{"id": "var_unpriced"}
		]
	}`)

	suite.recorder.On("RecordPriceChange", ctx, "var_priced", mock.Anything, "EUR").
		Return(suite.record("var_priced", "7.99", "EUR"), nil).Once()

	result, err := suite.dispatcher.Dispatch(ctx, hooks.EventVariantsCreated, payload)

	suite.Require().NoError(err)
	suite.Equal(1, result.Recorded)
	suite.recorder.AssertExpectations(suite.T())
	suite.recorder.AssertNumberOfCalls(suite.T(), "RecordPriceChange", 1)
}

func (suite *HooksTestSuite) TestVariantPricesUpdated_PartialFailureContinues() {
	ctx := context.Background()
	payload := json.RawMessage(`{
		"product_variants": [
			{"id": "var_1", "price_set": {"id": "ps", "prices": [
				{"amount": "1.00", "currency_code": "EUR"},
				{"amount": "2.00", "currency_code": "USD"},
				{"amount": "3.00", "currency_code": "GBP"}
			]}}
		]
	}`)

	suite.recorder.On("RecordPriceChange", ctx, "var_1", mock.Anything, "EUR").
		Return(suite.record("var_1", "1.00", "EUR"), nil).Once()
	suite.recorder.On("RecordPriceChange", ctx, "var_1", mock.Anything, "USD").
		Return(nil, apperrors.NewPersistenceError("store down", assert.AnError)).Once()
	suite.recorder.On("RecordPriceChange", ctx, "var_1", mock.Anything, "GBP").
		Return(suite.record("var_1", "3.00", "GBP"), nil).Once()

	result, err := suite.dispatcher.Dispatch(ctx, hooks.EventVariantPricesUpdated, payload)

	suite.Require().NoError(err)
	suite.Equal(2, result.Recorded)
	suite.Require().Len(result.Failures, 1)
	suite.Equal("var_1", result.Failures[0].VariantID)
	suite.Equal("USD", result.Failures[0].CurrencyCode)
	suite.ErrorIs(result.Failures[0].Err, apperrors.ErrPersistence)
	suite.recorder.AssertExpectations(suite.T())
}

func (suite *HooksTestSuite) TestDispatch_UnknownEvent() {
	_, err := suite.dispatcher.Dispatch(context.Background(), "order.created", json.RawMessage(`{}`))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *HooksTestSuite) TestDispatch_MalformedPayload() {
	_, err := suite.dispatcher.Dispatch(context.Background(), hooks.EventVariantsCreated, json.RawMessage(`{"product_variants": "not-a-list"}`))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.recorder.AssertNotCalled(suite.T(), "RecordPriceChange")
}

func TestHooksTestSuite(t *testing.T) {
	suite.Run(t, new(HooksTestSuite))
}
