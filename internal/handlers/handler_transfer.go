package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transferHandler handles HTTP requests that move money between accounts.
type transferHandler struct {
	ledger portssvc.LedgerSvcFacade
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := &transferHandler{ledger: ledger}
	rg.POST("/transfers", h.createTransfer)
}

// createTransfer godoc
// @Summary Transfer between accounts
// @Description Moves money between two accounts atomically and returns the shared TRANSFER record
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount or self transfer"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Insufficient funds"
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}
	logger = logger.With(
		slog.String("source_account", req.SourceAccount),
		slog.String("destination_account", req.DestinationAccount))

	summary, err := h.ledger.Transfer(c.Request.Context(), req.SourceAccount, req.DestinationAccount, req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to transfer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(summary))
}
