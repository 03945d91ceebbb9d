package repositories

import (
	"context"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByNumber retrieves an account by its number. Returns apperrors.ErrNotFound when unknown.
	FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error)

	// ListAccounts retrieves every account in creation order.
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount stores a new account. Returns apperrors.ErrDuplicate when the number is taken.
	SaveAccount(ctx context.Context, account *domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// Accounts are stored by reference; balance changes go through the account itself.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
