package utils

import (
	"testing"
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1500.00", FormatMoney(domain.MustNormalize(1500)))
	assert.Equal(t, "-0.50", FormatMoney(domain.MustNormalize("-0.5")))
	assert.Equal(t, "0.00", FormatMoney(domain.ZeroMoney))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 0, 0, 123000000, time.FixedZone("BRT", -3*3600))
	assert.Equal(t, "2024-03-01T12:00:00.123Z", FormatTimestamp(ts))
}
