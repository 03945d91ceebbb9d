package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/core/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/handlers"
	"github.com/SscSPs/bank_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlowRouter(t *testing.T, rateLimit string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{RateLimit: rateLimit, StatementPageSize: 50}
	container := &portssvc.ServiceContainer{Ledger: services.NewLedgerService()}
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container))
	return r
}

func call(t *testing.T, r *gin.Engine, method, path, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func TestLedgerFlow(t *testing.T) {
	r := newFlowRouter(t, "1000-M")

	assert.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/api/v1/customers", `{"name":"Ana","taxId":"111"}`, nil))
	assert.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/api/v1/customers", `{"name":"Carla","taxId":"333"}`, nil))
	assert.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/api/v1/customers", `{"name":"Bruno","taxId":"222"}`, nil))

	var ana, carla dto.AccountResponse
	require.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/api/v1/customers/111/accounts", "", &ana))
	require.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/api/v1/customers/333/accounts", "", &carla))
	assert.Equal(t, "1001", ana.Number)
	assert.Equal(t, "1002", carla.Number)

	require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/api/v1/accounts/1001/deposits", `{"amount":"1500.00"}`, nil))
	require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/api/v1/accounts/1002/deposits", `{"amount":2500}`, nil))

	var summary dto.TransactionResponse
	require.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/api/v1/transfers",
		`{"sourceAccount":"1002","destinationAccount":"1001","amount":"300.00"}`, &summary))
	assert.Equal(t, "TRANSFER", string(summary.Kind))
	assert.Equal(t, "300.00", summary.Amount)

	var errBody map[string]string
	assert.Equal(t, http.StatusConflict, call(t, r, http.MethodPost, "/api/v1/accounts/1001/withdrawals", `{"amount":"5000"}`, &errBody))
	assert.Equal(t, apperrors.KindInsufficientFunds, errBody["kind"])
	assert.Equal(t, http.StatusBadRequest, call(t, r, http.MethodPost, "/api/v1/accounts/1001/deposits", `{"amount":"0"}`, &errBody))
	assert.Equal(t, apperrors.KindInvalidAmount, errBody["kind"])
	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodGet, "/api/v1/accounts/4040", "", &errBody))

	var account dto.AccountResponse
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/api/v1/accounts/1002", "", &account))
	assert.Equal(t, "2200.00", account.Balance)

	var statement dto.StatementResponse
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/api/v1/accounts/1001/statement", "", &statement))
	assert.Equal(t, "1800.00", statement.Balance)
	require.Len(t, statement.Transactions, 3)
	assert.Equal(t, "transfer from 1002", statement.Transactions[1].Description)
	assert.Equal(t, summary.TransactionID, statement.Transactions[2].TransactionID)

	var listing dto.ListCustomersResponse
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/api/v1/customers", "", &listing))
	require.Len(t, listing.Customers, 3)
	assert.Equal(t, "Ana", listing.Customers[0].Name)
	assert.Equal(t, "Carla", listing.Customers[1].Name)
	assert.Equal(t, "Bruno", listing.Customers[2].Name)
	assert.Empty(t, listing.Customers[2].Accounts)
}

func TestHealthAndRateLimit(t *testing.T) {
	r := newFlowRouter(t, "1-M")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/api/v1/customers", "", nil))
	assert.Equal(t, http.StatusTooManyRequests, call(t, r, http.MethodGet, "/api/v1/customers", "", nil))
}

func TestRegisterRoutes_InvalidRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{RateLimit: "lots", StatementPageSize: 50}
	container := &portssvc.ServiceContainer{Ledger: services.NewLedgerService()}
	assert.Error(t, handlers.RegisterRoutes(gin.New(), cfg, container))
}
