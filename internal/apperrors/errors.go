package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates a non-positive or unparseable monetary amount.
// It wraps ErrValidation so callers checking for generic validation failures still match.
var ErrInvalidAmount = fmt.Errorf("invalid amount: %w", ErrValidation)

// ErrInsufficientFunds indicates a withdrawal larger than the current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidOperation indicates an operation that is structurally not allowed,
// such as a transfer whose source and destination are the same account.
var ErrInvalidOperation = errors.New("invalid operation")

// Error kinds exposed to callers that need to branch on the failure without errors.Is.
const (
	KindInvalidAmount     = "INVALID_AMOUNT"
	KindInsufficientFunds = "INSUFFICIENT_FUNDS"
	KindNotFound          = "NOT_FOUND"
	KindInvalidOperation  = "INVALID_OPERATION"
	KindDuplicate         = "DUPLICATE"
	KindValidation        = "VALIDATION"
	KindInternal          = "INTERNAL"
)

// Kind classifies err into one of the Kind* constants.
// The more specific kinds are checked first since ErrInvalidAmount also matches ErrValidation.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidAmount):
		return KindInvalidAmount
	case errors.Is(err, ErrInsufficientFunds):
		return KindInsufficientFunds
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidOperation):
		return KindInvalidOperation
	case errors.Is(err, ErrDuplicate):
		return KindDuplicate
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindInternal
	}
}
