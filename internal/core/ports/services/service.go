package services

// ServiceContainer holds instances of all the application services.
// It is handed to the handlers when routes are registered.
type ServiceContainer struct {
	Ledger LedgerSvcFacade
}
