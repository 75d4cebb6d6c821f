package domain

import (
	"fmt"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic.
// It uses big.Rat internally to avoid floating-point precision issues,
// and maps directly onto the NUMERIC column type in the store.
// Money is immutable.
type Money struct {
	amount *big.Rat
}

// NewMoneyFromDecimal creates Money from a decimal string.
// For example: "19.99", "1250.00", "0.01".
func NewMoneyFromDecimal(decimal string) (*Money, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(decimal); !ok {
		return nil, fmt.Errorf("invalid decimal format: %s", decimal)
	}
	return &Money{amount: rat}, nil
}

// NewMoneyFromRat creates Money from an existing big.Rat.
// The rat is copied to ensure immutability.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{amount: big.NewRat(0, 1)}
	}
	return &Money{amount: new(big.Rat).Set(rat)}
}

// IsNegative returns true if the money amount is negative.
func (m *Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// Equals returns true if m equals other.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Cmp(other.amount) == 0
}

// Rat returns a copy of the internal big.Rat.
// Used for NUMERIC persistence.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.amount)
}

// String returns a decimal representation with two digits of precision.
func (m *Money) String() string {
	return m.amount.FloatString(2)
}
