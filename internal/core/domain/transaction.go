package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/google/uuid"
)

// TransactionKind classifies a monetary event recorded in an account log.
type TransactionKind string

const (
	Deposit    TransactionKind = "DEPOSIT"
	Withdrawal TransactionKind = "WITHDRAWAL"
	Transfer   TransactionKind = "TRANSFER"
)

// Transaction is an immutable record of a balance-affecting event.
// A TRANSFER summary is appended by value to both involved logs and keeps the same TransactionID
// in each, so the two copies identify one logical event.
type Transaction struct {
	TransactionID      string          `json:"transactionID"`
	Timestamp          time.Time       `json:"timestamp"`
	Kind               TransactionKind `json:"kind"`
	Amount             Money           `json:"amount"` // Always positive; direction comes from Kind
	Description        string          `json:"description"`
	SourceAccount      string          `json:"sourceAccount,omitempty"`      // Empty when not applicable
	DestinationAccount string          `json:"destinationAccount,omitempty"` // Empty when not applicable
}

func newTransaction(kind TransactionKind, amount Money, description, source, destination string) Transaction {
	return Transaction{
		TransactionID:      uuid.NewString(),
		Timestamp:          now(),
		Kind:               kind,
		Amount:             amount,
		Description:        description,
		SourceAccount:      source,
		DestinationAccount: destination,
	}
}

// Validate checks the structural shape of a transaction record.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction %s amount must be positive: %w", t.TransactionID, apperrors.ErrInvalidAmount)
	}
	switch t.Kind {
	case Deposit:
		if t.DestinationAccount == "" {
			return fmt.Errorf("deposit %s requires a destination account: %w", t.TransactionID, apperrors.ErrValidation)
		}
	case Withdrawal:
		if t.SourceAccount == "" {
			return fmt.Errorf("withdrawal %s requires a source account: %w", t.TransactionID, apperrors.ErrValidation)
		}
	case Transfer:
		if t.SourceAccount == "" || t.DestinationAccount == "" {
			return fmt.Errorf("transfer %s requires source and destination accounts: %w", t.TransactionID, apperrors.ErrValidation)
		}
	default:
		return fmt.Errorf("unknown transaction kind %q: %w", t.Kind, apperrors.ErrValidation)
	}
	return nil
}
