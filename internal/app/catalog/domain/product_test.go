package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, decimal string) *Money {
	t.Helper()
	m, err := NewMoneyFromDecimal(decimal)
	require.NoError(t, err)
	return m
}

func TestNewProduct_Valid(t *testing.T) {
	now := time.Now().UTC()
	date := now.Add(-24 * time.Hour)

	p, err := NewProduct("  Macbook Pro  ", "a laptop", mustMoney(t, "1250.00"), "img/1.jpg", date, now)
	require.NoError(t, err)

	assert.Equal(t, "Macbook Pro", p.Name(), "name should be trimmed")
	assert.Equal(t, "a laptop", p.Description())
	assert.Equal(t, "1250.00", p.Price().String())
	assert.Equal(t, date, p.Date())
	assert.Equal(t, now, p.CreatedAt())
	assert.Equal(t, now, p.UpdatedAt())
	assert.False(t, p.Persisted(), "a new product is transient")
	assert.Empty(t, p.DomainEvents())
}

func TestNewProduct_Invalid(t *testing.T) {
	now := time.Now().UTC()
	price := mustMoney(t, "10.00")

	_, err := NewProduct("", "", price, "", now, now)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("   ", "", price, "", now, now)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct(strings.Repeat("x", 256), "", price, "", now, now)
	assert.ErrorIs(t, err, ErrNameTooLong)

	_, err = NewProduct("ok", "", nil, "", now, now)
	assert.ErrorIs(t, err, ErrNilPrice)

	_, err = NewProduct("ok", "", mustMoney(t, "-0.01"), "", now, now)
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestAssignID_OnceOnly(t *testing.T) {
	now := time.Now().UTC()
	p, err := NewProduct("Widget", "", mustMoney(t, "5.00"), "", now, now)
	require.NoError(t, err)

	p.AssignID(42)
	require.True(t, p.Persisted())
	assert.Equal(t, int64(42), p.ID())
	require.Len(t, p.DomainEvents(), 1)

	created, ok := p.DomainEvents()[0].(*ProductCreated)
	require.True(t, ok)
	assert.Equal(t, int64(42), created.ProductID)
	assert.Equal(t, "Widget", created.Name)

	// Identity is immutable once set.
	p.AssignID(99)
	assert.Equal(t, int64(42), p.ID())
	assert.Len(t, p.DomainEvents(), 1)
}

func TestReconstructProduct_CarriesStoredState(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)
	p := ReconstructProduct(7, "Stored", "stored desc", mustMoney(t, "10.00"), "stored.jpg",
		created, created, updated, []CategoryRef{ResolvedCategoryRef(1, "Books")})

	assert.Equal(t, int64(7), p.ID())
	assert.True(t, p.Persisted())
	assert.Equal(t, "Stored", p.Name())
	assert.Equal(t, created, p.CreatedAt())
	assert.Equal(t, updated, p.UpdatedAt())
	require.Len(t, p.Categories(), 1)
	assert.Empty(t, p.DomainEvents(), "loading a row is not an event")
}

func TestReplaceCategories(t *testing.T) {
	now := time.Now().UTC()
	p := ReconstructProduct(7, "P", "", mustMoney(t, "1.00"), "", now, now, now,
		[]CategoryRef{ResolvedCategoryRef(1, "Books")})

	p.ReplaceCategories([]CategoryRef{
		ResolvedCategoryRef(2, "Electronics"),
		ResolvedCategoryRef(3, "Computers"),
	})

	refs := p.Categories()
	require.Len(t, refs, 2)
	assert.Equal(t, int64(2), refs[0].ID())
	assert.Equal(t, int64(3), refs[1].ID())
}
