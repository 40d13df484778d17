package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := NewMoney(249950, 100)
		require.NoError(t, err)
		assert.Equal(t, "2499.50", m.String())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})

	t.Run("negative denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})

	t.Run("negative numerator allowed", func(t *testing.T) {
		m, err := NewMoney(-100, 1)
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("199.99")
	require.NoError(t, err)
	assert.Equal(t, "199.99", m.String())

	_, err = ParseMoney("two hundred")
	assert.Error(t, err)
}

func TestMoney_Arithmetic(t *testing.T) {
	assert.Equal(t, "150.00", Units(100).Add(Units(50)).String())
	assert.Equal(t, "600.00", Units(200).MultiplyInt(3).String())
	assert.Equal(t, "150.00", Units(100).MultiplyByRat(big.NewRat(3, 2)).String())

	half, _ := NewMoney(1, 2)
	assert.Equal(t, "50.00", Units(100).Multiply(half).String())
}

func TestMoney_Precision(t *testing.T) {
	// 0.1 added ten times is exactly one unit.
	tenth, _ := NewMoney(1, 10)
	sum := Units(0)
	for i := 0; i < 10; i++ {
		sum = sum.Add(tenth)
	}
	assert.True(t, sum.Equals(Units(1)))

	// 20000 * 1.25 * 1.5 * 0.9 * 0.85 * 1.2 = 34425 exactly
	total := Units(20000).
		MultiplyByRat(big.NewRat(5, 4)).
		MultiplyByRat(big.NewRat(3, 2)).
		MultiplyByRat(big.NewRat(9, 10)).
		MultiplyByRat(big.NewRat(17, 20)).
		MultiplyByRat(big.NewRat(6, 5))
	assert.Equal(t, "34425.00", total.String())
}

func TestMoney_RoundHalfUp(t *testing.T) {
	cases := []struct {
		num, den int64
		want     int64
	}{
		{12344, 10, 1234},
		{12345, 10, 1235},
		{12346, 10, 1235},
		{1234, 1, 1234},
		{1, 3, 0},
		{1, 2, 1},
		{0, 1, 0},
		{-12344, 10, -1234},
		{-12345, 10, -1234},
	}

	for _, tc := range cases {
		m, err := NewMoney(tc.num, tc.den)
		require.NoError(t, err)
		assert.Equal(t, tc.want, m.RoundHalfUp(), "%d/%d", tc.num, tc.den)
	}
}

func TestMoney_Comparisons(t *testing.T) {
	m1 := Units(100)
	m2 := Units(50)
	m3, _ := NewMoney(200, 2)

	assert.True(t, m1.GreaterThan(m2))
	assert.False(t, m2.GreaterThan(m1))
	assert.True(t, m2.LessThan(m1))
	assert.True(t, m1.Equals(m3))
	assert.False(t, m1.Equals(m2))
	assert.True(t, m1.IsPositive())
	assert.True(t, Units(0).IsZero())
}

func TestMoney_CopyIsIndependent(t *testing.T) {
	m := Units(10)
	c := m.Copy()
	r := m.Rat()
	r.SetInt64(99)

	assert.True(t, c.Equals(m))
	assert.Equal(t, "10.00", m.String())
	assert.InDelta(t, 10.0, m.Float64(), 0.0001)
}
