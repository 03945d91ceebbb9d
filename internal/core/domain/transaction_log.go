package domain

// TransactionLog is the append-only history of one account.
// It is not safe for concurrent use; Account guards it with its own lock.
type TransactionLog struct {
	entries []Transaction
}

// NewTransactionLog returns an empty log.
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Append adds tx at the end of the log.
func (l *TransactionLog) Append(tx Transaction) {
	l.entries = append(l.entries, tx)
}

// List returns a copy of the entries in append order.
func (l *TransactionLog) List() []Transaction {
	out := make([]Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *TransactionLog) Len() int {
	return len(l.entries)
}
