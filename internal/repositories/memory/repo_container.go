package memory

import (
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider returns empty in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo: newMemoryCustomerRepository(),
		AccountRepo:  newMemoryAccountRepository(),
	}
}
