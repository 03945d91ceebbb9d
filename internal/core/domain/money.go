package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits every Money value carries.
const MoneyScale int32 = 2

// MaxAmountDigits bounds the significant digits of a normalized amount,
// fractional digits included.
const MaxAmountDigits = 28

// maxAmountText bounds textual input before it is parsed.
const maxAmountText = 64

// ZeroMoney is the zero amount.
var ZeroMoney = Money{amount: decimal.Zero}

// Money is an exact decimal amount fixed at MoneyScale fractional digits.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// Normalize converts raw into Money, rounding half-to-even to two decimal places.
// Accepted inputs are Money, decimal.Decimal, strings, json.Number, integers and floats.
// Floats are converted through their shortest decimal representation, so 0.1 becomes exactly 0.10.
// Sign is not checked here; operations reject non-positive amounts themselves.
func Normalize(raw any) (Money, error) {
	var d decimal.Decimal
	switch v := raw.(type) {
	case Money:
		d = v.amount
	case *Money:
		if v == nil {
			return Money{}, fmt.Errorf("nil amount: %w", apperrors.ErrInvalidAmount)
		}
		d = v.amount
	case decimal.Decimal:
		d = v
	case string:
		v = strings.TrimSpace(v)
		if len(v) > maxAmountText {
			return Money{}, fmt.Errorf("amount text longer than %d characters: %w", maxAmountText, apperrors.ErrInvalidAmount)
		}
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return Money{}, fmt.Errorf("%q is not a number: %w", v, apperrors.ErrInvalidAmount)
		}
		d = parsed
	case json.Number:
		if len(v) > maxAmountText {
			return Money{}, fmt.Errorf("amount text longer than %d characters: %w", maxAmountText, apperrors.ErrInvalidAmount)
		}
		parsed, err := decimal.NewFromString(v.String())
		if err != nil {
			return Money{}, fmt.Errorf("%q is not a number: %w", v.String(), apperrors.ErrInvalidAmount)
		}
		d = parsed
	case int:
		d = decimal.NewFromInt(int64(v))
	case int32:
		d = decimal.NewFromInt32(v)
	case int64:
		d = decimal.NewFromInt(v)
	case uint:
		d = decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0)
	case uint32:
		d = decimal.NewFromInt(int64(v))
	case uint64:
		d = decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
	case float32:
		return Normalize(float64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Money{}, fmt.Errorf("%v is not a finite number: %w", v, apperrors.ErrInvalidAmount)
		}
		d = decimal.NewFromFloat(v)
	case nil:
		return Money{}, fmt.Errorf("missing amount: %w", apperrors.ErrInvalidAmount)
	default:
		return Money{}, fmt.Errorf("unsupported amount type %T: %w", raw, apperrors.ErrInvalidAmount)
	}
	return quantize(d)
}

// quantize rounds d to MoneyScale, refusing results wider than MaxAmountDigits.
// The magnitude is checked from the exponent first so huge exponents never get rescaled.
func quantize(d decimal.Decimal) (Money, error) {
	if d.IsZero() {
		return ZeroMoney, nil
	}
	intDigits := int64(d.NumDigits()) + int64(d.Exponent())
	if intDigits > int64(MaxAmountDigits-MoneyScale) {
		return Money{}, fmt.Errorf("amount exceeds %d significant digits: %w", MaxAmountDigits, apperrors.ErrInvalidAmount)
	}
	if intDigits <= -int64(MoneyScale)-1 {
		// below 0.001, rounds to zero
		return ZeroMoney, nil
	}
	rounded := d.RoundBank(MoneyScale)
	if rounded.NumDigits() > MaxAmountDigits {
		return Money{}, fmt.Errorf("amount exceeds %d significant digits: %w", MaxAmountDigits, apperrors.ErrInvalidAmount)
	}
	return Money{amount: rounded}, nil
}

// MustNormalize is Normalize for trusted literals. It panics on invalid input.
func MustNormalize(raw any) Money {
	m, err := Normalize(raw)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal exposes the underlying decimal value.
func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) Add(other Money) Money { return Money{amount: m.amount.Add(other.amount)} }

func (m Money) Sub(other Money) Money { return Money{amount: m.amount.Sub(other.amount)} }

func (m Money) Neg() Money { return Money{amount: m.amount.Neg()} }

func (m Money) Cmp(other Money) int { return m.amount.Cmp(other.amount) }

func (m Money) Equal(other Money) bool { return m.amount.Equal(other.amount) }

func (m Money) LessThan(other Money) bool { return m.amount.LessThan(other.amount) }

func (m Money) LessThanOrEqual(other Money) bool { return m.amount.LessThanOrEqual(other.amount) }

func (m Money) GreaterThan(other Money) bool { return m.amount.GreaterThan(other.amount) }

func (m Money) IsPositive() bool { return m.amount.IsPositive() }

func (m Money) IsNegative() bool { return m.amount.IsNegative() }

func (m Money) IsZero() bool { return m.amount.IsZero() }

// String renders the amount with exactly two fractional digits, e.g. "1500.00".
func (m Money) String() string { return m.amount.StringFixed(MoneyScale) }

// MarshalJSON encodes the amount as a fixed-point string so no precision is lost in transit.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var raw any
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding amount: %w", apperrors.ErrInvalidAmount)
		}
		raw = s
	} else {
		raw = json.Number(data)
	}
	parsed, err := Normalize(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
