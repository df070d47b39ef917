package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/omnibuskit/price_history_app/internal/apperrors"
	"github.com/omnibuskit/price_history_app/internal/core/domain"
	portssvc "github.com/omnibuskit/price_history_app/internal/core/ports/services"
	"github.com/omnibuskit/price_history_app/internal/dto"
	"github.com/omnibuskit/price_history_app/internal/handlers"
	"github.com/omnibuskit/price_history_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PriceHistoryService ---
type MockPriceHistoryService struct {
	mock.Mock
}

func (m *MockPriceHistoryService) RecordPriceChange(ctx context.Context, variantID string, price decimal.Decimal, currencyCode string) (*domain.PriceHistoryRecord, error) {
	args := m.Called(ctx, variantID, price, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceHistoryRecord), args.Error(1)
}

func (m *MockPriceHistoryService) GetLowestPriceInPeriod(ctx context.Context, variantID string, days int) (*domain.PriceHistoryRecord, error) {
	args := m.Called(ctx, variantID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceHistoryRecord), args.Error(1)
}

func (m *MockPriceHistoryService) GetLowestPricesForVariants(ctx context.Context, variantIDs []string, days int) (map[string]domain.PriceHistoryRecord, error) {
	args := m.Called(ctx, variantIDs, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.PriceHistoryRecord), args.Error(1)
}

func (m *MockPriceHistoryService) CleanupOldRecords(ctx context.Context, olderThanDays int) (int64, error) {
	args := m.Called(ctx, olderThanDays)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPriceHistoryService) DeleteForVariants(ctx context.Context, variantIDs []string) (int64, error) {
	args := m.Called(ctx, variantIDs)
	return args.Get(0).(int64), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PriceHistorySvcFacade = (*MockPriceHistoryService)(nil)

// --- Mock ProductCatalog ---
type MockProductCatalog struct {
	mock.Mock
}

func (m *MockProductCatalog) ListVariantIDs(ctx context.Context, productID string) ([]string, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.ProductCatalog = (*MockProductCatalog)(nil)

// --- Test Suite ---
type PriceHistoryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockPriceHistoryService
	mockCatalog *MockProductCatalog
	jwtSecret   string
}

// generateTestToken creates a dummy JWT for the admin surface.
func (suite *PriceHistoryHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "omnibus-test",
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *PriceHistoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockService = new(MockPriceHistoryService)
	suite.mockCatalog = new(MockProductCatalog)

	store := suite.router.Group("/store")
	handlers.RegisterStorePriceHistoryRoutes(store, suite.mockService, suite.mockCatalog, 30)

	admin := suite.router.Group("/admin", middleware.AdminAuthMiddleware(suite.jwtSecret))
	handlers.RegisterAdminPriceHistoryRoutes(admin, suite.mockService, suite.mockCatalog, 30)
}

// --- GET /store/products/:productID/price-history ---

func (suite *PriceHistoryHandlerTestSuite) TestGetLowestPrices_Success() {
	recordedAt := time.Now().AddDate(0, 0, -5).UTC().Truncate(time.Second)
	suite.mockCatalog.On("ListVariantIDs", mock.Anything, "prod_1").Return([]string{"var_1", "var_2"}, nil).Once()
	suite.mockService.On("GetLowestPricesForVariants", mock.Anything, []string{"var_1", "var_2"}, 30).Return(map[string]domain.PriceHistoryRecord{
		"var_1": {
			ID:           "rec_1",
			VariantID:    "var_1",
			Price:        decimal.RequireFromString("8.50"),
			CurrencyCode: "EUR",
			RecordedAt:   recordedAt,
		},
	}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/store/products/prod_1/price-history", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LowestPricesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.LowestPrices, 1)
	suite.True(resp.LowestPrices["var_1"].Price.Equal(decimal.RequireFromString("8.50")))
	suite.Equal("EUR", resp.LowestPrices["var_1"].CurrencyCode)

	suite.mockCatalog.AssertExpectations(suite.T())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PriceHistoryHandlerTestSuite) TestGetLowestPrices_NoVariants() {
	suite.mockCatalog.On("ListVariantIDs", mock.Anything, "prod_bare").Return([]string{}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/store/products/prod_bare/price-history", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"lowestPrices": {}}`, w.Body.String())
	suite.mockService.AssertNotCalled(suite.T(), "GetLowestPricesForVariants")
}

func (suite *PriceHistoryHandlerTestSuite) TestGetLowestPrices_ProductNotFound() {
	suite.mockCatalog.On("ListVariantIDs", mock.Anything, "prod_missing").
		Return(nil, apperrors.NewNotFoundError("product prod_missing not found")).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/store/products/prod_missing/price-history", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PriceHistoryHandlerTestSuite) TestGetLowestPrices_ServiceErrorMasked() {
	suite.mockCatalog.On("ListVariantIDs", mock.Anything, "prod_1").Return([]string{"var_1"}, nil).Once()
	suite.mockService.On("GetLowestPricesForVariants", mock.Anything, []string{"var_1"}, 30).
		Return(nil, apperrors.NewPersistenceError("pg: connection refused to 10.0.0.5", assert.AnError)).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/store/products/prod_1/price-history", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	// No internal error detail leaks to the caller.
	suite.JSONEq(`{"message": "Failed to retrieve price history"}`, w.Body.String())
	suite.NotContains(w.Body.String(), "10.0.0.5")
}

// --- DELETE /admin/products/:productID/price-history ---

func (suite *PriceHistoryHandlerTestSuite) TestDeletePriceHistory_Success() {
	suite.mockCatalog.On("ListVariantIDs", mock.Anything, "prod_1").Return([]string{"var_1", "var_2"}, nil).Once()
	suite.mockService.On("DeleteForVariants", mock.Anything, []string{"var_1", "var_2"}).Return(int64(12), nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/admin/products/prod_1/price-history", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DeletePriceHistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(int64(12), resp.DeletedCount)
	suite.Equal("Deleted 12 price history records", resp.Message)

	suite.mockCatalog.AssertExpectations(suite.T())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PriceHistoryHandlerTestSuite) TestDeletePriceHistory_NoVariants() {
	suite.mockCatalog.On("ListVariantIDs", mock.Anything, "prod_bare").Return([]string{}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/admin/products/prod_bare/price-history", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DeletePriceHistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Zero(resp.DeletedCount)
	suite.Equal("No variants found for this product", resp.Message)
	suite.mockService.AssertNotCalled(suite.T(), "DeleteForVariants")
}

func (suite *PriceHistoryHandlerTestSuite) TestDeletePriceHistory_Unauthorized() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/admin/products/prod_1/price-history", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCatalog.AssertNotCalled(suite.T(), "ListVariantIDs")
}

func (suite *PriceHistoryHandlerTestSuite) TestDeletePriceHistory_ServiceErrorMasked() {
	suite.mockCatalog.On("ListVariantIDs", mock.Anything, "prod_1").Return([]string{"var_1"}, nil).Once()
	suite.mockService.On("DeleteForVariants", mock.Anything, []string{"var_1"}).
		Return(int64(0), apperrors.NewPersistenceError("delete failed", assert.AnError)).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/admin/products/prod_1/price-history", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)

	var resp dto.DeletePriceHistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Equal("Failed to delete price history", resp.Message)
}

func TestPriceHistoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PriceHistoryHandlerTestSuite))
}
