package dto

import (
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/utils"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	TaxID string `json:"taxId" binding:"required"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID int    `json:"customerId"`
	Name       string `json:"name"`
	TaxID      string `json:"taxId"`
	CreatedAt  string `json:"createdAt"`
}

// CustomerWithAccountsResponse is one entry of the customer listing.
type CustomerWithAccountsResponse struct {
	CustomerResponse
	Accounts []AccountResponse `json:"accounts"` // Never null, empty when the customer has no accounts
}

// ListCustomersResponse wraps the customer listing.
type ListCustomersResponse struct {
	Customers []CustomerWithAccountsResponse `json:"customers"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		TaxID:      c.TaxID,
		CreatedAt:  utils.FormatTimestamp(c.CreatedAt),
	}
}

// ToListCustomersResponse converts the ledger listing, preserving registration and creation order.
func ToListCustomersResponse(entries []domain.CustomerAccounts) ListCustomersResponse {
	res := ListCustomersResponse{Customers: make([]CustomerWithAccountsResponse, len(entries))}
	for i, entry := range entries {
		accounts := make([]AccountResponse, len(entry.Accounts))
		for j, acc := range entry.Accounts {
			accounts[j] = ToAccountResponse(acc)
		}
		res.Customers[i] = CustomerWithAccountsResponse{
			CustomerResponse: ToCustomerResponse(entry.Customer),
			Accounts:         accounts,
		}
	}
	return res
}
