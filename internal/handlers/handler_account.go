package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/SscSPs/bank_ledger/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	ledger   portssvc.LedgerSvcFacade
	pageSize int
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(ledger portssvc.LedgerSvcFacade, pageSize int) *accountHandler {
	return &accountHandler{ledger: ledger, pageSize: pageSize}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade, pageSize int) {
	h := newAccountHandler(ledger, pageSize)

	accounts := rg.Group("/accounts/:number")
	{
		accounts.GET("", h.getAccount)
		accounts.POST("/deposits", h.deposit)
		accounts.POST("/withdrawals", h.withdraw)
		accounts.GET("/statement", h.statement)
	}
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce  json
// @Param   number path string true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Router /accounts/{number} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	number := c.Param("number")

	account, err := h.ledger.FindAccount(c.Request.Context(), number)
	if err != nil {
		respondError(c, logger.With(slog.String("account_number", number)), err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deposit godoc
// @Summary Deposit into an account
// @Description Credits the account. The amount may be a JSON string or number and is rounded half-to-even to two places
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   number path string true "Account number"
// @Param   deposit body dto.AmountRequest true "Amount to deposit"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid or non-positive amount"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /accounts/{number}/deposits [post]
func (h *accountHandler) deposit(c *gin.Context) {
	h.applyAmount(c, h.ledger.Deposit, "Failed to deposit")
}

// withdraw godoc
// @Summary Withdraw from an account
// @Description Debits the account. Overdrafts are rejected and leave the account untouched
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   number path string true "Account number"
// @Param   withdrawal body dto.AmountRequest true "Amount to withdraw"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid or non-positive amount"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Insufficient funds"
// @Router /accounts/{number}/withdrawals [post]
func (h *accountHandler) withdraw(c *gin.Context) {
	h.applyAmount(c, h.ledger.Withdraw, "Failed to withdraw")
}

// applyAmount binds an AmountRequest, runs op against the path account and responds with the account.
func (h *accountHandler) applyAmount(c *gin.Context, op func(ctx context.Context, number string, rawAmount any) error, failureMessage string) {
	logger := middleware.GetLoggerFromContext(c)
	number := c.Param("number")
	logger = logger.With(slog.String("account_number", number))

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	if err := op(c.Request.Context(), number, req.Amount); err != nil {
		respondError(c, logger, err, failureMessage)
		return
	}

	account, err := h.ledger.FindAccount(c.Request.Context(), number)
	if err != nil {
		respondError(c, logger, err, failureMessage)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// statement godoc
// @Summary Get an account statement
// @Description Returns one page of the account log in commit order together with the balance read at the same moment
// @Tags accounts
// @Produce  json
// @Param   number path string true "Account number"
// @Param   limit query int false "Page size" minimum(1) maximum(500)
// @Param   pageToken query string false "Token from a previous page"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or page token"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{number}/statement [get]
func (h *accountHandler) statement(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	number := c.Param("number")
	logger = logger.With(slog.String("account_number", number))

	var params dto.ListStatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, logger, err)
		return
	}
	if params.Limit == 0 {
		params.Limit = h.pageSize
	}

	offset, err := pagination.DecodeOffsetToken(params.PageToken)
	if err != nil {
		respondError(c, logger, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation), "Invalid page token")
		return
	}

	account, err := h.ledger.FindAccount(c.Request.Context(), number)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve statement")
		return
	}

	// Snapshot, not ledger.Statement: balance and log must come from the same lock hold
	// or a concurrent posting could land between the two reads.
	balance, txs := account.Snapshot()
	page, next := pagination.Page(txs, offset, params.Limit)
	c.JSON(http.StatusOK, dto.ToStatementResponse(account.Number, balance, page, next))
}
