package dto

import (
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/utils"
)

// AmountRequest carries an amount for deposits and withdrawals.
// Amount may be a JSON string or number; it is normalized by the ledger.
type AmountRequest struct {
	Amount any `json:"amount" binding:"required,money"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Number     string `json:"number"`
	OwnerName  string `json:"ownerName"`
	OwnerTaxID string `json:"ownerTaxId"`
	Balance    string `json:"balance"`
	CreatedAt  string `json:"createdAt"`
}

// ListStatementParams defines query parameters for an account statement.
type ListStatementParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"` // Defaults to the configured page size
	PageToken string `form:"pageToken"`
}

// StatementResponse is one page of an account's transactions in commit order.
type StatementResponse struct {
	AccountNumber string                `json:"accountNumber"`
	Balance       string                `json:"balance"`
	Transactions  []TransactionResponse `json:"transactions"`
	NextPageToken string                `json:"nextPageToken,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Number:     acc.Number,
		OwnerName:  acc.Owner.Name,
		OwnerTaxID: acc.Owner.TaxID,
		Balance:    utils.FormatMoney(acc.Balance()),
		CreatedAt:  utils.FormatTimestamp(acc.CreatedAt),
	}
}

// ToStatementResponse builds a statement page from a balance and a window of its log.
func ToStatementResponse(number string, balance domain.Money, txs []domain.Transaction, nextPageToken string) StatementResponse {
	return StatementResponse{
		AccountNumber: number,
		Balance:       utils.FormatMoney(balance),
		Transactions:  ToTransactionResponses(txs),
		NextPageToken: nextPageToken,
	}
}
