package domain

import (
	"fmt"
	"sync"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
)

// Account is a customer's balance together with its transaction log.
// Number and Owner never change after construction; balance and log are only reachable through
// methods that hold mu, so a balance change and its log entry are observed together.
type Account struct {
	Number string   `json:"number"` // Sequence assigned, starting at 1001 by default
	Owner  Customer `json:"owner"`
	AuditFields

	mu      sync.Mutex
	balance Money
	log     *TransactionLog
}

// NewAccount opens an empty account for owner.
func NewAccount(number string, owner Customer) *Account {
	return &Account{
		Number:      number,
		Owner:       owner,
		AuditFields: AuditFields{CreatedAt: now()},
		balance:     ZeroMoney,
		log:         NewTransactionLog(),
	}
}

// Balance returns the current balance.
func (a *Account) Balance() Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Statement returns a copy of the log in commit order.
func (a *Account) Statement() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.log.List()
}

// Snapshot returns the balance and log read under a single lock acquisition.
func (a *Account) Snapshot() (Money, []Transaction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance, a.log.List()
}

// Deposit credits amount and records a DEPOSIT entry.
func (a *Account) Deposit(amount Money, description string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.CanDeposit(amount); err != nil {
		return err
	}
	a.applyDeposit(amount, description)
	return nil
}

// Withdraw debits amount and records a WITHDRAWAL entry.
func (a *Account) Withdraw(amount Money, description string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.CanWithdraw(amount); err != nil {
		return err
	}
	a.applyWithdraw(amount, description)
	return nil
}

// CanDeposit reports whether amount could be credited. The caller must hold the account lock
// when the answer is used to decide a later mutation.
func (a *Account) CanDeposit(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit of %s into account %s: %w", amount, a.Number, apperrors.ErrInvalidAmount)
	}
	return nil
}

// CanWithdraw reports whether amount could be debited without the balance going negative.
func (a *Account) CanWithdraw(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("withdrawal of %s from account %s: %w", amount, a.Number, apperrors.ErrInvalidAmount)
	}
	if a.balance.LessThan(amount) {
		return fmt.Errorf("withdrawal of %s from account %s with balance %s: %w", amount, a.Number, a.balance, apperrors.ErrInsufficientFunds)
	}
	return nil
}

func (a *Account) applyDeposit(amount Money, description string) {
	a.balance = a.balance.Add(amount)
	a.log.Append(newTransaction(Deposit, amount, description, "", a.Number))
}

func (a *Account) applyWithdraw(amount Money, description string) {
	a.balance = a.balance.Sub(amount)
	a.log.Append(newTransaction(Withdrawal, amount, description, a.Number, ""))
}

func (a *Account) record(tx Transaction) {
	a.log.Append(tx)
}
