package utils

import (
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// FormatMoney formats an amount with exactly two fraction digits.
// Example: 1500 returns "1500.00"
// Example: -0.5 returns "-0.50"
func FormatMoney(amount domain.Money) string {
	return amount.String()
}

// FormatTimestamp renders t as ISO-8601 in UTC with the precision it was recorded with.
// Example: 2024-03-01T12:00:00.123456Z
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
