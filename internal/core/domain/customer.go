package domain

// Customer is a registered owner of accounts, identified naturally by its TaxID.
// Customers are immutable once created.
type Customer struct {
	CustomerID int    `json:"customerID"` // Sequence assigned, starting at 1
	Name       string `json:"name"`
	TaxID      string `json:"taxID"` // Unique natural key
	AuditFields
}

// NewCustomer builds a customer stamped with the current time.
func NewCustomer(id int, name, taxID string) Customer {
	return Customer{
		CustomerID:  id,
		Name:        name,
		TaxID:       taxID,
		AuditFields: AuditFields{CreatedAt: now()},
	}
}

// CustomerAccounts pairs a customer with the accounts it owns, in account-creation order.
type CustomerAccounts struct {
	Customer Customer
	Accounts []*Account
}
