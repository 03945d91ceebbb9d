package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
)

// memoryCustomerRepository keeps customers keyed by tax ID and remembers registration order.
type memoryCustomerRepository struct {
	mu      sync.RWMutex
	byTaxID map[string]domain.Customer
	order   []string
}

func newMemoryCustomerRepository() *memoryCustomerRepository {
	return &memoryCustomerRepository{byTaxID: make(map[string]domain.Customer)}
}

// Ensure memoryCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*memoryCustomerRepository)(nil)

func (r *memoryCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	if customer.TaxID == "" {
		return fmt.Errorf("customer without tax ID: %w", apperrors.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTaxID[customer.TaxID]; exists {
		return fmt.Errorf("customer with tax ID %s: %w", customer.TaxID, apperrors.ErrDuplicate)
	}
	r.byTaxID[customer.TaxID] = customer
	r.order = append(r.order, customer.TaxID)
	return nil
}

func (r *memoryCustomerRepository) FindCustomerByTaxID(ctx context.Context, taxID string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.byTaxID[taxID]
	if !ok {
		return domain.Customer{}, fmt.Errorf("customer with tax ID %s: %w", taxID, apperrors.ErrNotFound)
	}
	return customer, nil
}

func (r *memoryCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]domain.Customer, len(r.order))
	for i, taxID := range r.order {
		customers[i] = r.byTaxID[taxID]
	}
	return customers, nil
}
