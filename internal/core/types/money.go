// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors. No rounding is
// applied inside the domain; display formatting is a presentation concern.
type Money = decimal.Decimal

// Percent is a percentage value (0-100 in normal use).
// Kept as a full-precision decimal so fractional rates like 2.5% survive.
type Percent = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromInt creates a Money value from a whole rupee amount.
func NewMoneyFromInt(v int64) Money {
	return decimal.NewFromInt(v)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}
