package domain

import (
	"fmt"
	"sync"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
)

// Operation is the closed set of ledger mutations: DepositOp, WithdrawOp and *TransferOperation.
type Operation interface {
	Execute() error
	isOperation()
}

// DepositOp credits one account.
type DepositOp struct {
	Account     *Account
	Amount      Money
	Description string
}

func (op DepositOp) Execute() error {
	if op.Account == nil {
		return fmt.Errorf("deposit without account: %w", apperrors.ErrInvalidOperation)
	}
	return op.Account.Deposit(op.Amount, op.Description)
}

func (DepositOp) isOperation() {}

// WithdrawOp debits one account.
type WithdrawOp struct {
	Account     *Account
	Amount      Money
	Description string
}

func (op WithdrawOp) Execute() error {
	if op.Account == nil {
		return fmt.Errorf("withdrawal without account: %w", apperrors.ErrInvalidOperation)
	}
	return op.Account.Withdraw(op.Amount, op.Description)
}

func (WithdrawOp) isOperation() {}

// TransferState is the lifecycle of a TransferOperation.
type TransferState string

const (
	TransferPending   TransferState = "PENDING"
	TransferCommitted TransferState = "COMMITTED"
	TransferRejected  TransferState = "REJECTED"
)

// TransferOperation moves Amount from Source to Destination.
//
// Both legs are validated while both account locks are held and before anything is mutated, so a
// transfer either commits fully (withdrawal, deposit and one shared TRANSFER summary in both logs)
// or is rejected with no effect.
type TransferOperation struct {
	Source      *Account
	Destination *Account
	Amount      Money

	mu      sync.Mutex
	state   TransferState
	summary Transaction
}

// NewTransferOperation returns a pending transfer.
func NewTransferOperation(source, destination *Account, amount Money) *TransferOperation {
	return &TransferOperation{
		Source:      source,
		Destination: destination,
		Amount:      amount,
		state:       TransferPending,
	}
}

func (*TransferOperation) isOperation() {}

// State returns the current lifecycle state.
func (op *TransferOperation) State() TransferState {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.state
}

// Summary returns the shared TRANSFER record once the transfer has committed.
func (op *TransferOperation) Summary() (Transaction, bool) {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.summary, op.state == TransferCommitted
}

// Execute runs the transfer. A transfer executes at most once.
func (op *TransferOperation) Execute() error {
	op.mu.Lock()
	defer op.mu.Unlock()

	if op.state != TransferPending {
		return fmt.Errorf("transfer already %s: %w", op.state, apperrors.ErrInvalidOperation)
	}
	if op.Source == nil || op.Destination == nil {
		op.state = TransferRejected
		return fmt.Errorf("transfer without source or destination: %w", apperrors.ErrInvalidOperation)
	}
	if op.Source == op.Destination || op.Source.Number == op.Destination.Number {
		op.state = TransferRejected
		return fmt.Errorf("transfer from account %s to itself: %w", op.Source.Number, apperrors.ErrInvalidOperation)
	}

	first, second := lockOrder(op.Source, op.Destination)
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if err := op.Source.CanWithdraw(op.Amount); err != nil {
		op.state = TransferRejected
		return err
	}
	if err := op.Destination.CanDeposit(op.Amount); err != nil {
		op.state = TransferRejected
		return err
	}

	op.Source.applyWithdraw(op.Amount, "transfer to "+op.Destination.Number)
	op.Destination.applyDeposit(op.Amount, "transfer from "+op.Source.Number)

	summary := newTransaction(Transfer, op.Amount, "transfer", op.Source.Number, op.Destination.Number)
	op.Source.record(summary)
	op.Destination.record(summary)

	op.summary = summary
	op.state = TransferCommitted
	return nil
}

// lockOrder sorts two accounts by ascending account number. Numbers are decimal strings without
// leading zeros, so a shorter number is always the smaller one.
func lockOrder(a, b *Account) (*Account, *Account) {
	if len(a.Number) < len(b.Number) || (len(a.Number) == len(b.Number) && a.Number < b.Number) {
		return a, b
	}
	return b, a
}
