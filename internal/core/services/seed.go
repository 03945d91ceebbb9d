package services

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
)

// demoCustomer is one customer of the demo data set together with its opening deposit.
type demoCustomer struct {
	name    string
	taxID   string
	deposit string
}

var demoCustomers = []demoCustomer{
	{name: "Ana", taxID: "11111111111", deposit: "1500"},
	{name: "Bruno", taxID: "22222222222", deposit: "800"},
	{name: "Carla", taxID: "33333333333", deposit: "2500"},
}

// SeedDemoData populates ledger with three customers, one account each, their opening
// deposits, a 300.00 transfer from Carla to Ana and a 100.00 withdrawal from Bruno.
func SeedDemoData(ctx context.Context, ledger portssvc.LedgerSvcFacade) error {
	logger := (&BaseService{}).GetLogger(ctx)
	numbers := make(map[string]string, len(demoCustomers))

	for _, dc := range demoCustomers {
		customer, err := ledger.CreateCustomer(ctx, dc.name, dc.taxID)
		if err != nil {
			return fmt.Errorf("seeding customer %s: %w", dc.name, err)
		}
		account, err := ledger.OpenAccount(ctx, customer.TaxID)
		if err != nil {
			return fmt.Errorf("seeding account for %s: %w", dc.name, err)
		}
		if err := ledger.Deposit(ctx, account.Number, dc.deposit); err != nil {
			return fmt.Errorf("seeding deposit for %s: %w", dc.name, err)
		}
		numbers[dc.name] = account.Number
	}

	if _, err := ledger.Transfer(ctx, numbers["Carla"], numbers["Ana"], "300"); err != nil {
		return fmt.Errorf("seeding transfer: %w", err)
	}
	if err := ledger.Withdraw(ctx, numbers["Bruno"], "100"); err != nil {
		return fmt.Errorf("seeding withdrawal: %w", err)
	}

	logger.Info("Demo data seeded", slog.Int("customers", len(demoCustomers)))
	return nil
}
