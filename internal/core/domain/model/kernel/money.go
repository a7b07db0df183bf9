package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions. Returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, MoneyFromString, or ZeroMoney",
)

// Money is a value object representing a non-negative monetary amount with at
// most two decimal places. It wraps github.com/shopspring/decimal so that
// prices, line totals and order totals never go through binary floating point.
//
// Money is immutable: arithmetic methods return new values. The snapshot
// pricing rules of carts and orders rely on this: a line item's unit price is
// a Money copied at add time and never mutated afterward.
//
// Example usage:
//
//	price, err := kernel.MoneyFromString("10.00")
//	if err != nil {
//	    // handle error
//	}
//	lineTotal := price.MulQuantity(3) // 30.00
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoney creates a Money from a decimal amount.
// The amount must be non-negative and have at most two decimal places.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	if amount.Exponent() < -2 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s has more than two decimal places", amount))
	}

	return Money{amount: amount, isConstructed: true}, nil
}

// MoneyFromString parses a decimal string such as "10.00" into a Money.
// Typically used when reading prices from request bodies and database columns.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a constructed Money of 0.00.
// Used as the starting point for summing line item prices.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with exactly two decimal places,
// the fixed-precision form used on the wire.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// MulQuantity returns the amount multiplied by a line item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{
		amount:        m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}
}

// IsEqual compares two Money values numerically, so "10.0" equals "10.00".
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterThanOrEqual reports whether the amount is at least other's amount.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// Validate checks if the Money was properly constructed.
// Returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
