package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	ledger portssvc.LedgerSvcFacade
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(ledger portssvc.LedgerSvcFacade) *customerHandler {
	return &customerHandler{ledger: ledger}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newCustomerHandler(ledger)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:taxId", h.getCustomer)
		customers.POST("/:taxId/accounts", h.openAccount)
	}
}

// createCustomer godoc
// @Summary Register a customer
// @Description Registers a customer. A known tax ID returns the existing customer with 200
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Success 200 {object} dto.CustomerResponse "Existing customer"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	customer, created, err := h.ledger.RegisterCustomer(c.Request.Context(), req.Name, req.TaxID)
	if err != nil {
		respondError(c, logger, err, "Failed to create customer")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToCustomerResponse(customer))
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce  json
// @Param   taxId path string true "Customer tax ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/{taxId} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	taxID := c.Param("taxId")

	customer, err := h.ledger.FindCustomer(c.Request.Context(), taxID)
	if err != nil {
		respondError(c, logger.With(slog.String("tax_id", taxID)), err, "Failed to retrieve customer")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Description Lists every customer in registration order with its accounts in creation order
// @Tags customers
// @Produce  json
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 500 {object} map[string]string "Failed to list customers"
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	entries, err := h.ledger.ListCustomersWithAccounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list customers")
		return
	}

	logger.Debug("Customers listed successfully", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListCustomersResponse(entries))
}

// openAccount godoc
// @Summary Open an account
// @Description Opens a zero-balance account with the next sequential number
// @Tags customers
// @Produce  json
// @Param   taxId path string true "Customer tax ID"
// @Success 201 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/{taxId}/accounts [post]
func (h *customerHandler) openAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	taxID := c.Param("taxId")

	account, err := h.ledger.OpenAccount(c.Request.Context(), taxID)
	if err != nil {
		respondError(c, logger.With(slog.String("tax_id", taxID)), err, "Failed to open account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}
