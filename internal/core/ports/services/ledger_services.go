package services

import (
	"context"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// CustomerSvc defines customer registration and lookup.
type CustomerSvc interface {
	// CreateCustomer registers a customer, returning the existing one when taxID is already known.
	CreateCustomer(ctx context.Context, name string, taxID string) (domain.Customer, error)

	// RegisterCustomer behaves like CreateCustomer and also reports whether a new customer was created.
	RegisterCustomer(ctx context.Context, name string, taxID string) (domain.Customer, bool, error)

	// FindCustomer retrieves a customer by tax ID.
	FindCustomer(ctx context.Context, taxID string) (domain.Customer, error)
}

// AccountReaderSvc defines read operations for accounts
type AccountReaderSvc interface {
	// FindAccount retrieves an account by its number.
	FindAccount(ctx context.Context, number string) (*domain.Account, error)

	// Statement returns the account's transactions in commit order.
	Statement(ctx context.Context, number string) ([]domain.Transaction, error)

	// ListCustomersWithAccounts returns every customer in registration order with its accounts.
	ListCustomersWithAccounts(ctx context.Context) ([]domain.CustomerAccounts, error)
}

// AccountWriterSvc defines the balance-changing operations
type AccountWriterSvc interface {
	// OpenAccount opens a new zero-balance account for the customer with taxID.
	OpenAccount(ctx context.Context, taxID string) (*domain.Account, error)

	// Deposit normalizes rawAmount and credits the account.
	Deposit(ctx context.Context, number string, rawAmount any) error

	// Withdraw normalizes rawAmount and debits the account.
	Withdraw(ctx context.Context, number string, rawAmount any) error

	// Transfer moves rawAmount between two accounts and returns the shared TRANSFER record.
	Transfer(ctx context.Context, sourceNumber string, destinationNumber string, rawAmount any) (domain.Transaction, error)

	// Apply executes a prepared operation.
	Apply(ctx context.Context, op domain.Operation) error
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	CustomerSvc
	AccountReaderSvc
	AccountWriterSvc
}
