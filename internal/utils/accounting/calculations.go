package accounting

import (
	"fmt"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// CalculateSignedAmount returns the balance effect txn has on accountNumber.
// DEPOSIT into the account -> positive (+)
// WITHDRAWAL from the account -> negative (-)
// TRANSFER summaries -> zero, the withdrawal and deposit legs already carry the movement
func CalculateSignedAmount(txn domain.Transaction, accountNumber string) (domain.Money, error) {
	switch txn.Kind {
	case domain.Deposit:
		if txn.DestinationAccount != accountNumber {
			return domain.ZeroMoney, fmt.Errorf("deposit %s does not target account %s", txn.TransactionID, accountNumber)
		}
		return txn.Amount, nil
	case domain.Withdrawal:
		if txn.SourceAccount != accountNumber {
			return domain.ZeroMoney, fmt.Errorf("withdrawal %s does not debit account %s", txn.TransactionID, accountNumber)
		}
		return txn.Amount.Neg(), nil
	case domain.Transfer:
		if txn.SourceAccount != accountNumber && txn.DestinationAccount != accountNumber {
			return domain.ZeroMoney, fmt.Errorf("transfer %s does not involve account %s", txn.TransactionID, accountNumber)
		}
		return domain.ZeroMoney, nil
	default:
		return domain.ZeroMoney, fmt.Errorf("unknown transaction kind '%s' for transaction %s", txn.Kind, txn.TransactionID)
	}
}

// ReplayBalance sums the signed effects of transactions on accountNumber.
func ReplayBalance(transactions []domain.Transaction, accountNumber string) (domain.Money, error) {
	sum := domain.ZeroMoney
	for _, txn := range transactions {
		signed, err := CalculateSignedAmount(txn, accountNumber)
		if err != nil {
			return domain.ZeroMoney, fmt.Errorf("error replaying account %s: %w", accountNumber, err)
		}
		sum = sum.Add(signed)
	}
	return sum, nil
}

// VerifyBalance checks that the account balance equals the replay of its log and is not negative.
func VerifyBalance(acc *domain.Account) error {
	balance, log := acc.Snapshot()
	if balance.IsNegative() {
		return fmt.Errorf("account %s has negative balance %s", acc.Number, balance)
	}
	replayed, err := ReplayBalance(log, acc.Number)
	if err != nil {
		return err
	}
	if !replayed.Equal(balance) {
		return fmt.Errorf("account %s balance %s does not match replayed log total %s", acc.Number, balance, replayed)
	}
	return nil
}
