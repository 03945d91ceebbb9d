package services

import (
	"context"
	"fmt"

	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(ctx context.Context, cfg *config.Config, options ...LedgerOption) (*portssvc.ServiceContainer, error) {
	options = append([]LedgerOption{WithFirstAccountNumber(cfg.FirstAccountNumber)}, options...)
	ledger := NewLedgerService(options...)

	if cfg.SeedDemoData {
		if err := SeedDemoData(ctx, ledger); err != nil {
			return nil, fmt.Errorf("seeding demo data: %w", err)
		}
	}

	return &portssvc.ServiceContainer{Ledger: ledger}, nil
}
