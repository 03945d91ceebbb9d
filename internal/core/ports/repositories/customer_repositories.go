package repositories

import (
	"context"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByTaxID retrieves a customer by its tax ID. Returns apperrors.ErrNotFound when unknown.
	FindCustomerByTaxID(ctx context.Context, taxID string) (domain.Customer, error)

	// ListCustomers retrieves every customer in registration order.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer stores a new customer. Returns apperrors.ErrDuplicate when the tax ID is taken.
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
