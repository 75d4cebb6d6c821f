package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromDecimal(t *testing.T) {
	m, err := NewMoneyFromDecimal("19.99")
	require.NoError(t, err)
	assert.Equal(t, "19.99", m.String())
	assert.False(t, m.IsNegative())

	m, err = NewMoneyFromDecimal("-3.50")
	require.NoError(t, err)
	assert.True(t, m.IsNegative())

	_, err = NewMoneyFromDecimal("not-a-number")
	assert.Error(t, err)

	_, err = NewMoneyFromDecimal("")
	assert.Error(t, err)
}

func TestMoney_Equals(t *testing.T) {
	a, err := NewMoneyFromDecimal("10.50")
	require.NoError(t, err)
	b, err := NewMoneyFromDecimal("10.5")
	require.NoError(t, err)
	c, err := NewMoneyFromDecimal("10.51")
	require.NoError(t, err)

	assert.True(t, a.Equals(b), "trailing zeros are not significant")
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

func TestMoney_RatIsACopy(t *testing.T) {
	m, err := NewMoneyFromDecimal("5.00")
	require.NoError(t, err)

	r := m.Rat()
	r.Add(r, big.NewRat(1, 1))

	assert.Equal(t, "5.00", m.String(), "mutating the returned rat must not affect the money")
}

func TestNewMoneyFromRat(t *testing.T) {
	src := big.NewRat(1999, 100)
	m := NewMoneyFromRat(src)
	assert.Equal(t, "19.99", m.String())

	src.SetInt64(1)
	assert.Equal(t, "19.99", m.String(), "the source rat is copied")

	zero := NewMoneyFromRat(nil)
	assert.Equal(t, "0.00", zero.String())
}
