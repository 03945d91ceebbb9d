package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
)

// memoryAccountRepository keeps accounts keyed by number and remembers creation order.
// Accounts are never removed, so a returned pointer stays valid for the life of the repository.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	byNumber map[string]*domain.Account
	order    []string
}

func newMemoryAccountRepository() *memoryAccountRepository {
	return &memoryAccountRepository{byNumber: make(map[string]*domain.Account)}
}

// Ensure memoryAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*memoryAccountRepository)(nil)

func (r *memoryAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	if account == nil || account.Number == "" {
		return fmt.Errorf("account without number: %w", apperrors.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byNumber[account.Number]; exists {
		return fmt.Errorf("account %s: %w", account.Number, apperrors.ErrDuplicate)
	}
	r.byNumber[account.Number] = account
	r.order = append(r.order, account.Number)
	return nil
}

func (r *memoryAccountRepository) FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", number, apperrors.ErrNotFound)
	}
	return account, nil
}

func (r *memoryAccountRepository) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*domain.Account, len(r.order))
	for i, number := range r.order {
		accounts[i] = r.byNumber[number]
	}
	return accounts, nil
}
