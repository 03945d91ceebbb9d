package dto_test

import (
	"testing"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToListCustomersResponse(t *testing.T) {
	ana := domain.NewCustomer(1, "Ana", "111")
	bruno := domain.NewCustomer(2, "Bruno", "222")
	acc := domain.NewAccount("1001", ana)
	require.NoError(t, acc.Deposit(domain.MustNormalize("1500"), "deposit"))

	res := dto.ToListCustomersResponse([]domain.CustomerAccounts{
		{Customer: ana, Accounts: []*domain.Account{acc}},
		{Customer: bruno, Accounts: []*domain.Account{}},
	})

	require.Len(t, res.Customers, 2)
	assert.Equal(t, "Ana", res.Customers[0].Name)
	require.Len(t, res.Customers[0].Accounts, 1)
	assert.Equal(t, "1001", res.Customers[0].Accounts[0].Number)
	assert.Equal(t, "1500.00", res.Customers[0].Accounts[0].Balance)
	assert.Equal(t, "111", res.Customers[0].Accounts[0].OwnerTaxID)
	assert.NotNil(t, res.Customers[1].Accounts)
	assert.Empty(t, res.Customers[1].Accounts)
}

func TestToStatementResponse(t *testing.T) {
	acc := domain.NewAccount("1001", domain.NewCustomer(1, "Ana", "111"))
	require.NoError(t, acc.Deposit(domain.MustNormalize("10"), "deposit"))
	require.NoError(t, acc.Withdraw(domain.MustNormalize("2.5"), "withdrawal"))
	balance, txs := acc.Snapshot()

	res := dto.ToStatementResponse(acc.Number, balance, txs, "")

	assert.Equal(t, "7.50", res.Balance)
	require.Len(t, res.Transactions, 2)
	assert.Equal(t, domain.Deposit, res.Transactions[0].Kind)
	assert.Equal(t, "10.00", res.Transactions[0].Amount)
	assert.Equal(t, "1001", res.Transactions[0].DestinationAccount)
	assert.Empty(t, res.Transactions[0].SourceAccount)
	assert.Equal(t, "2.50", res.Transactions[1].Amount)
	assert.Equal(t, txs[1].TransactionID, res.Transactions[1].TransactionID)

	empty := dto.ToStatementResponse("1002", domain.ZeroMoney, nil, "")
	assert.NotNil(t, empty.Transactions)
	assert.Equal(t, "0.00", empty.Balance)
}
