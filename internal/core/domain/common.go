package domain

import "time"

// AuditFields holds creation metadata for ledger entities.
// Ledger entities are never updated in place, so only the creation side is tracked.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
}

// now is the clock used for audit fields and transaction timestamps.
var now = func() time.Time { return time.Now().UTC() }
