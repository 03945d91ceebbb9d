package dto

import (
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/utils"
)

// TransferRequest defines the data needed to move money between two accounts.
type TransferRequest struct {
	SourceAccount      string `json:"sourceAccount" binding:"required"`
	DestinationAccount string `json:"destinationAccount" binding:"required"`
	Amount             any    `json:"amount" binding:"required,money"`
}

// TransactionResponse defines the data returned for a log entry.
type TransactionResponse struct {
	TransactionID      string                 `json:"transactionId"`
	Timestamp          string                 `json:"timestamp"`
	Kind               domain.TransactionKind `json:"kind"`
	Amount             string                 `json:"amount"`
	Description        string                 `json:"description"`
	SourceAccount      string                 `json:"sourceAccount,omitempty"`
	DestinationAccount string                 `json:"destinationAccount,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:      tx.TransactionID,
		Timestamp:          utils.FormatTimestamp(tx.Timestamp),
		Kind:               tx.Kind,
		Amount:             utils.FormatMoney(tx.Amount),
		Description:        tx.Description,
		SourceAccount:      tx.SourceAccount,
		DestinationAccount: tx.DestinationAccount,
	}
}

// ToTransactionResponses converts a slice of transactions, never returning nil.
func ToTransactionResponses(txs []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		res[i] = ToTransactionResponse(tx)
	}
	return res
}
