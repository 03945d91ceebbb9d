package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/handlers"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateCustomer(ctx context.Context, name string, taxID string) (domain.Customer, error) {
	args := m.Called(ctx, name, taxID)
	return args.Get(0).(domain.Customer), args.Error(1)
}
func (m *MockLedgerService) RegisterCustomer(ctx context.Context, name string, taxID string) (domain.Customer, bool, error) {
	args := m.Called(ctx, name, taxID)
	return args.Get(0).(domain.Customer), args.Bool(1), args.Error(2)
}
func (m *MockLedgerService) FindCustomer(ctx context.Context, taxID string) (domain.Customer, error) {
	args := m.Called(ctx, taxID)
	return args.Get(0).(domain.Customer), args.Error(1)
}
func (m *MockLedgerService) FindAccount(ctx context.Context, number string) (*domain.Account, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockLedgerService) Statement(ctx context.Context, number string) ([]domain.Transaction, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) ListCustomersWithAccounts(ctx context.Context) ([]domain.CustomerAccounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerAccounts), args.Error(1)
}
func (m *MockLedgerService) OpenAccount(ctx context.Context, taxID string) (*domain.Account, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockLedgerService) Deposit(ctx context.Context, number string, rawAmount any) error {
	args := m.Called(ctx, number, rawAmount)
	return args.Error(0)
}
func (m *MockLedgerService) Withdraw(ctx context.Context, number string, rawAmount any) error {
	args := m.Called(ctx, number, rawAmount)
	return args.Error(0)
}
func (m *MockLedgerService) Transfer(ctx context.Context, sourceNumber string, destinationNumber string, rawAmount any) (domain.Transaction, error) {
	args := m.Called(ctx, sourceNumber, destinationNumber, rawAmount)
	return args.Get(0).(domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) Apply(ctx context.Context, op domain.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockLedger *MockLedgerService
	ana        domain.Customer
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(io.Discard, nil))))
	suite.mockLedger = new(MockLedgerService)
	suite.ana = domain.NewCustomer(1, "Ana", "111")

	v1 := suite.router.Group("/api/v1")
	suite.Require().NoError(handlers.RegisterLedgerRoutes(v1, suite.mockLedger, 2))
}

func (suite *LedgerHandlerTestSuite) TearDownTest() {
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			data, err := json.Marshal(body)
			suite.Require().NoError(err)
			raw = string(data)
		}
		reader = bytes.NewReader([]byte(raw))
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LedgerHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) (string, string) {
	body := suite.decodeErrorBody(w)
	return body["error"], body["kind"]
}

func (suite *LedgerHandlerTestSuite) decodeErrorBody(w *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestCreateCustomer_Created() {
	suite.mockLedger.On("RegisterCustomer", mock.Anything, "Ana", "111").Return(suite.ana, true, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/customers", dto.CreateCustomerRequest{Name: "Ana", TaxID: "111"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CustomerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.CustomerID)
	suite.Equal("111", resp.TaxID)
}

func (suite *LedgerHandlerTestSuite) TestCreateCustomer_AlreadyRegistered() {
	suite.mockLedger.On("RegisterCustomer", mock.Anything, "Ana", "111").Return(suite.ana, false, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/customers", dto.CreateCustomerRequest{Name: "Ana", TaxID: "111"})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestCreateCustomer_MissingTaxID() {
	w := suite.do(http.MethodPost, "/api/v1/customers", `{"name":"Ana"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	_, kind := suite.decodeError(w)
	suite.Equal(apperrors.KindValidation, kind)
}

func (suite *LedgerHandlerTestSuite) TestGetCustomer_NotFound() {
	suite.mockLedger.On("FindCustomer", mock.Anything, "999").
		Return(domain.Customer{}, fmt.Errorf("customer with tax ID 999: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/customers/999", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	_, kind := suite.decodeError(w)
	suite.Equal(apperrors.KindNotFound, kind)
}

func (suite *LedgerHandlerTestSuite) TestOpenAccount() {
	suite.mockLedger.On("OpenAccount", mock.Anything, "111").Return(domain.NewAccount("1001", suite.ana), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/customers/111/accounts", nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("1001", resp.Number)
	suite.Equal("0.00", resp.Balance)
	suite.Equal("Ana", resp.OwnerName)
}

func (suite *LedgerHandlerTestSuite) TestDeposit_PassesNumbersAsJSONNumber() {
	acc := domain.NewAccount("1001", suite.ana)
	suite.mockLedger.On("Deposit", mock.Anything, "1001", json.Number("1500.10")).Return(nil).Once()
	suite.mockLedger.On("FindAccount", mock.Anything, "1001").Return(acc, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/1001/deposits", `{"amount": 1500.10}`)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestDeposit_InvalidAmountRejectedAtEdge() {
	w := suite.do(http.MethodPost, "/api/v1/accounts/1001/deposits", `{"amount": "ten"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	_, kind := suite.decodeError(w)
	suite.Equal(apperrors.KindInvalidAmount, kind)
}

func (suite *LedgerHandlerTestSuite) TestDeposit_HugeExponentRejectedAtEdge() {
	w := suite.do(http.MethodPost, "/api/v1/accounts/1001/deposits", `{"amount": "1e2000000"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	_, kind := suite.decodeError(w)
	suite.Equal(apperrors.KindInvalidAmount, kind)
	suite.mockLedger.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestWithdraw_InsufficientFunds() {
	suite.mockLedger.On("Withdraw", mock.Anything, "1001", "900.00").
		Return(fmt.Errorf("withdrawal of 900.00 from account 1001 with balance 700.00: %w", apperrors.ErrInsufficientFunds)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/1001/withdrawals", dto.AmountRequest{Amount: "900.00"})

	suite.Equal(http.StatusConflict, w.Code)
	msg, kind := suite.decodeError(w)
	suite.Equal(apperrors.KindInsufficientFunds, kind)
	suite.Contains(msg, "insufficient funds")
}

func (suite *LedgerHandlerTestSuite) TestTransfer_SelfTransfer() {
	suite.mockLedger.On("Transfer", mock.Anything, "1001", "1001", "5").
		Return(domain.Transaction{}, fmt.Errorf("transfer to the same account: %w", apperrors.ErrInvalidOperation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transfers", dto.TransferRequest{SourceAccount: "1001", DestinationAccount: "1001", Amount: "5"})

	suite.Equal(http.StatusBadRequest, w.Code)
	_, kind := suite.decodeError(w)
	suite.Equal(apperrors.KindInvalidOperation, kind)
}

func (suite *LedgerHandlerTestSuite) TestInternalErrorsAreNotExposed() {
	suite.mockLedger.On("ListCustomersWithAccounts", mock.Anything).Return(nil, fmt.Errorf("boom")).Once()

	w := suite.do(http.MethodGet, "/api/v1/customers", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	body := suite.decodeErrorBody(w)
	suite.Equal(apperrors.KindInternal, body["kind"])
	suite.NotContains(body["error"], "boom")
	suite.Equal(w.Header().Get("X-Request-ID"), body["requestId"])
}

func (suite *LedgerHandlerTestSuite) TestStatement_Paginates() {
	acc := domain.NewAccount("1001", suite.ana)
	for _, amount := range []string{"1", "2", "3"} {
		suite.Require().NoError(acc.Deposit(domain.MustNormalize(amount), "deposit"))
	}
	suite.mockLedger.On("FindAccount", mock.Anything, "1001").Return(acc, nil).Twice()

	w := suite.do(http.MethodGet, "/api/v1/accounts/1001/statement", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var first dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &first))
	suite.Equal("6.00", first.Balance)
	suite.Require().Len(first.Transactions, 2)
	suite.Equal("1.00", first.Transactions[0].Amount)
	suite.NotEmpty(first.NextPageToken)

	w = suite.do(http.MethodGet, "/api/v1/accounts/1001/statement?pageToken="+first.NextPageToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var second dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &second))
	suite.Require().Len(second.Transactions, 1)
	suite.Equal("3.00", second.Transactions[0].Amount)
	suite.Empty(second.NextPageToken)
}

func (suite *LedgerHandlerTestSuite) TestStatement_InvalidPageToken() {
	w := suite.do(http.MethodGet, "/api/v1/accounts/1001/statement?pageToken=not-a-token", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	_, kind := suite.decodeError(w)
	suite.Equal(apperrors.KindValidation, kind)
}

// TestLedgerHandler runs the test suite
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
