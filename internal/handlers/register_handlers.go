package handlers

import (
	"fmt"

	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/SscSPs/bank_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	return setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the rate limited /api/v1 group
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	lim, err := middleware.NewMemoryRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("configuring rate limiter: %w", err)
	}

	v1 := r.Group("/api/v1", middleware.RateLimit(lim))
	return RegisterLedgerRoutes(v1, services.Ledger, cfg.StatementPageSize)
}

// RegisterLedgerRoutes registers customer, account and transfer routes on rg.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade, pageSize int) error {
	if err := registerValidations(); err != nil {
		return err
	}
	registerCustomerRoutes(rg, ledger)
	registerAccountRoutes(rg, ledger, pageSize)
	registerTransferRoutes(rg, ledger)
	return nil
}
