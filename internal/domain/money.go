package domain

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a decimal currency amount in major units (e.g., 99.5 dollars).
// It marshals to bare JSON numbers so persisted snapshots and the payment
// request body keep the wire shape described in the storage layout.
type Amount struct {
	d decimal.Decimal
}

// NewAmount creates an Amount from a float. Intended for literals in tests
// and catalog documents; float rounding is absorbed by the decimal conversion.
func NewAmount(f float64) Amount {
	return Amount{d: decimal.NewFromFloat(f)}
}

// AmountFromString parses a decimal string such as "99.5".
func AmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{d: d}, nil
}

// MinorUnits converts the amount to the processor's integer minor-unit
// representation (amount x 100, half-up rounding).
func (a Amount) MinorUnits() int64 {
	return a.d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// MulInt returns the amount multiplied by an integer quantity.
func (a Amount) MulInt(n int) Amount {
	return Amount{d: a.d.Mul(decimal.NewFromInt(int64(n)))}
}

// Add returns the sum of two amounts.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Equal reports whether two amounts represent the same value.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// String returns the decimal representation without trailing zeros.
func (a Amount) String() string {
	return a.d.String()
}

// MarshalJSON emits a bare JSON number (99.5, not "99.5").
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.d.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.d = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", data, err)
	}
	a.d = d
	return nil
}
