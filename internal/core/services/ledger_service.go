package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/repositories/memory"
)

const (
	// DefaultFirstAccountNumber is the number given to the first account opened in a ledger.
	DefaultFirstAccountNumber = 1001

	depositDescription    = "deposit"
	withdrawalDescription = "withdrawal"
)

// CustomerFactory builds a customer once the ledger has assigned its id.
type CustomerFactory func(id int, name string, taxID string) domain.Customer

// AccountFactory builds an account once the ledger has assigned its number.
type AccountFactory func(number string, owner domain.Customer) *domain.Account

// LedgerService is the registry owning every customer and account.
//
// mu serializes registration and account opening so tax IDs and account numbers are handed out
// exactly once, and lets listings observe a consistent set of customers and accounts. Balance and
// log changes are guarded by each account's own lock; accounts are never removed, so a resolved
// account stays valid.
type LedgerService struct {
	BaseService

	mu                sync.RWMutex
	customerRepo      portsrepo.CustomerRepositoryFacade
	accountRepo       portsrepo.AccountRepositoryFacade
	nextCustomerID    int
	nextAccountNumber int

	customerFactory CustomerFactory
	accountFactory  AccountFactory
}

// LedgerOption is a functional option for configuring the ledger service
type LedgerOption func(*LedgerService)

// WithRepositories stores customers and accounts in repos instead of fresh in-memory repositories.
func WithRepositories(repos portsrepo.RepositoryProvider) LedgerOption {
	return func(s *LedgerService) {
		if repos.CustomerRepo != nil {
			s.customerRepo = repos.CustomerRepo
		}
		if repos.AccountRepo != nil {
			s.accountRepo = repos.AccountRepo
		}
	}
}

// WithCustomerFactory replaces the default customer constructor.
func WithCustomerFactory(factory CustomerFactory) LedgerOption {
	return func(s *LedgerService) {
		if factory != nil {
			s.customerFactory = factory
		}
	}
}

// WithAccountFactory replaces the default account constructor.
func WithAccountFactory(factory AccountFactory) LedgerOption {
	return func(s *LedgerService) {
		if factory != nil {
			s.accountFactory = factory
		}
	}
}

// WithFirstAccountNumber changes the number assigned to the first account. Values below 1 are ignored.
func WithFirstAccountNumber(number int) LedgerOption {
	return func(s *LedgerService) {
		if number > 0 {
			s.nextAccountNumber = number
		}
	}
}

// NewLedgerService creates an empty ledger with the provided options
func NewLedgerService(options ...LedgerOption) *LedgerService {
	repos := memory.NewRepositoryProvider()
	svc := &LedgerService{
		customerRepo:      repos.CustomerRepo,
		accountRepo:       repos.AccountRepo,
		nextCustomerID:    1,
		nextAccountNumber: DefaultFirstAccountNumber,
		customerFactory:   domain.NewCustomer,
		accountFactory:    domain.NewAccount,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure LedgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

func (s *LedgerService) CreateCustomer(ctx context.Context, name string, taxID string) (domain.Customer, error) {
	customer, _, err := s.RegisterCustomer(ctx, name, taxID)
	return customer, err
}

func (s *LedgerService) RegisterCustomer(ctx context.Context, name string, taxID string) (domain.Customer, bool, error) {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		err := fmt.Errorf("tax ID is required: %w", apperrors.ErrValidation)
		s.LogWarn(ctx, err, "Customer registration rejected")
		return domain.Customer{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.customerRepo.FindCustomerByTaxID(ctx, taxID)
	if err == nil {
		s.LogDebug(ctx, "Customer already registered",
			slog.Int("customer_id", existing.CustomerID),
			slog.String("tax_id", taxID))
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up customer", slog.String("tax_id", taxID))
		return domain.Customer{}, false, err
	}

	customer := s.customerFactory(s.nextCustomerID, name, taxID)
	customer.TaxID = taxID
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("tax_id", taxID))
		return domain.Customer{}, false, err
	}
	s.nextCustomerID++

	s.LogInfo(ctx, "Customer created successfully",
		slog.Int("customer_id", customer.CustomerID),
		slog.String("tax_id", taxID))
	return customer, true, nil
}

func (s *LedgerService) FindCustomer(ctx context.Context, taxID string) (domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByTaxID(ctx, strings.TrimSpace(taxID))
	if err != nil {
		s.LogDebug(ctx, "Customer not found", slog.String("tax_id", taxID))
		return domain.Customer{}, err
	}
	return customer, nil
}

func (s *LedgerService) OpenAccount(ctx context.Context, taxID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.customerRepo.FindCustomerByTaxID(ctx, strings.TrimSpace(taxID))
	if err != nil {
		s.LogWarn(ctx, err, "Cannot open account for unknown customer", slog.String("tax_id", taxID))
		return nil, err
	}

	number := strconv.Itoa(s.nextAccountNumber)
	account := s.accountFactory(number, owner)
	if account == nil || account.Number != number {
		err := errors.New("account factory returned an account with an unexpected number")
		s.LogError(ctx, err, "Failed to open account", slog.String("account_number", number))
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_number", number))
		return nil, err
	}
	s.nextAccountNumber++

	s.LogInfo(ctx, "Account opened successfully",
		slog.String("account_number", number),
		slog.Int("customer_id", owner.CustomerID))
	return account, nil
}

func (s *LedgerService) FindAccount(ctx context.Context, number string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, number)
	if err != nil {
		s.LogDebug(ctx, "Account not found", slog.String("account_number", number))
		return nil, err
	}
	return account, nil
}

func (s *LedgerService) Deposit(ctx context.Context, number string, rawAmount any) error {
	account, err := s.FindAccount(ctx, number)
	if err != nil {
		return err
	}
	amount, err := domain.Normalize(rawAmount)
	if err != nil {
		s.LogWarn(ctx, err, "Deposit rejected", slog.String("account_number", number))
		return err
	}
	return s.Apply(ctx, domain.DepositOp{Account: account, Amount: amount, Description: depositDescription})
}

func (s *LedgerService) Withdraw(ctx context.Context, number string, rawAmount any) error {
	account, err := s.FindAccount(ctx, number)
	if err != nil {
		return err
	}
	amount, err := domain.Normalize(rawAmount)
	if err != nil {
		s.LogWarn(ctx, err, "Withdrawal rejected", slog.String("account_number", number))
		return err
	}
	return s.Apply(ctx, domain.WithdrawOp{Account: account, Amount: amount, Description: withdrawalDescription})
}

func (s *LedgerService) Transfer(ctx context.Context, sourceNumber string, destinationNumber string, rawAmount any) (domain.Transaction, error) {
	source, err := s.FindAccount(ctx, sourceNumber)
	if err != nil {
		return domain.Transaction{}, err
	}
	destination, err := s.FindAccount(ctx, destinationNumber)
	if err != nil {
		return domain.Transaction{}, err
	}
	amount, err := domain.Normalize(rawAmount)
	if err != nil {
		s.LogWarn(ctx, err, "Transfer rejected",
			slog.String("source_account", sourceNumber),
			slog.String("destination_account", destinationNumber))
		return domain.Transaction{}, err
	}

	op := domain.NewTransferOperation(source, destination, amount)
	if err := s.Apply(ctx, op); err != nil {
		return domain.Transaction{}, err
	}
	summary, _ := op.Summary()
	return summary, nil
}

// Apply executes op and logs its outcome. Rejections are expected outcomes and logged as warnings.
func (s *LedgerService) Apply(ctx context.Context, op domain.Operation) error {
	var attrs []any
	var missing string
	switch o := op.(type) {
	case domain.DepositOp:
		if o.Account == nil {
			missing = "deposit account"
			break
		}
		attrs = []any{slog.String("operation", "deposit"), slog.String("account_number", o.Account.Number), slog.String("amount", o.Amount.String())}
	case domain.WithdrawOp:
		if o.Account == nil {
			missing = "withdrawal account"
			break
		}
		attrs = []any{slog.String("operation", "withdrawal"), slog.String("account_number", o.Account.Number), slog.String("amount", o.Amount.String())}
	case *domain.TransferOperation:
		if o == nil || o.Source == nil || o.Destination == nil {
			missing = "transfer source or destination"
			break
		}
		attrs = []any{slog.String("operation", "transfer"), slog.String("source_account", o.Source.Number), slog.String("destination_account", o.Destination.Number), slog.String("amount", o.Amount.String())}
	default:
		err := fmt.Errorf("unsupported operation %T: %w", op, apperrors.ErrInvalidOperation)
		s.LogError(ctx, err, "Operation rejected")
		return err
	}
	if missing != "" {
		err := fmt.Errorf("%T without %s: %w", op, missing, apperrors.ErrInvalidOperation)
		s.LogWarn(ctx, err, "Operation rejected")
		return err
	}

	if err := op.Execute(); err != nil {
		s.LogWarn(ctx, err, "Operation rejected", append(attrs, slog.String("kind", apperrors.Kind(err)))...)
		return err
	}

	s.LogInfo(ctx, "Operation committed", attrs...)
	return nil
}

func (s *LedgerService) Statement(ctx context.Context, number string) ([]domain.Transaction, error) {
	account, err := s.FindAccount(ctx, number)
	if err != nil {
		return nil, err
	}
	return account.Statement(), nil
}

func (s *LedgerService) ListCustomersWithAccounts(ctx context.Context) ([]domain.CustomerAccounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}

	byOwner := make(map[string][]*domain.Account, len(customers))
	for _, account := range accounts {
		byOwner[account.Owner.TaxID] = append(byOwner[account.Owner.TaxID], account)
	}

	out := make([]domain.CustomerAccounts, 0, len(customers))
	for _, customer := range customers {
		owned := byOwner[customer.TaxID]
		if owned == nil {
			owned = []*domain.Account{}
		}
		out = append(out, domain.CustomerAccounts{Customer: customer, Accounts: owned})
	}

	s.LogDebug(ctx, "Customers listed successfully", slog.Int("count", len(out)))
	return out, nil
}
