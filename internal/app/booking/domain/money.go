package domain

import (
	"fmt"
	"math/big"
)

// Money represents a monetary value with exact rational arithmetic.
// It stores the value as a big.Rat so multipliers like 1.5 or 0.85 never drift.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
// Example: NewMoney(249950, 100) represents 2499.50.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator <= 0 {
		return nil, fmt.Errorf("money denominator must be positive, got %d", denominator)
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// Units creates a Money holding a whole number of currency units.
func Units(amount int64) *Money {
	return &Money{rat: new(big.Rat).SetInt64(amount)}
}

// NewMoneyFromRat creates a Money from a copy of rat.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return Units(0)
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// ParseMoney parses a decimal string such as "200" or "199.99".
func ParseMoney(s string) (*Money, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid money amount %q", s)
	}
	return &Money{rat: rat}, nil
}

// Rat returns a copy of the underlying rational value.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Add returns m + other.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Multiply returns m * other.
func (m *Money) Multiply(other *Money) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, other.rat)}
}

// MultiplyByRat returns m * rat.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// MultiplyInt returns m * n.
func (m *Money) MultiplyInt(n int64) *Money {
	return m.MultiplyByRat(new(big.Rat).SetInt64(n))
}

// RoundHalfUp rounds to the nearest whole unit; exact halves round up
// (1234.4 -> 1234, 1234.5 -> 1235).
func (m *Money) RoundHalfUp() int64 {
	// floor((2*num + den) / (2*den)); big.Int.Div is Euclidean, which is
	// floor division for the always-positive denominator.
	num := new(big.Int).Mul(m.rat.Num(), big.NewInt(2))
	num.Add(num, m.rat.Denom())
	den := new(big.Int).Mul(m.rat.Denom(), big.NewInt(2))
	return new(big.Int).Div(num, den).Int64()
}

// IsZero returns true if the value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the value is below zero.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive returns true if the value is above zero.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// LessThan returns true if m < other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if m > other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if both values are numerically equal.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximation for display only.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns the value with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
