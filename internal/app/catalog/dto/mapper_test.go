package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
)

func TestFromProduct_FlattensCategories(t *testing.T) {
	now := time.Now().UTC()
	price, err := domain.NewMoneyFromDecimal("1250.00")
	require.NoError(t, err)

	p := domain.ReconstructProduct(42, "Macbook Pro", "a laptop", price, "img/1.jpg",
		now, now, now, []domain.CategoryRef{
			domain.ResolvedCategoryRef(2, "Electronics"),
			domain.ResolvedCategoryRef(3, "Computers"),
		})

	d := FromProduct(p)

	assert.Equal(t, int64(42), d.ID)
	assert.Equal(t, "Macbook Pro", d.Name)
	assert.Equal(t, "1250.00", d.Price)
	assert.Equal(t, "img/1.jpg", d.ImageURL)
	require.Len(t, d.Categories, 2)
	assert.Equal(t, CategoryDTO{ID: 2, Name: "Electronics"}, d.Categories[0])
	assert.Equal(t, CategoryDTO{ID: 3, Name: "Computers"}, d.Categories[1])
}

func TestNewProductFromDTO(t *testing.T) {
	now := time.Now().UTC()

	p, err := NewProductFromDTO(ProductDTO{
		Name:  "Widget",
		Price: "19.99",
		Date:  now,
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "Widget", p.Name())
	assert.Equal(t, "19.99", p.Price().String())
	assert.False(t, p.Persisted())

	_, err = NewProductFromDTO(ProductDTO{Name: "Widget", Price: "abc"}, now)
	assert.Error(t, err)

	_, err = NewProductFromDTO(ProductDTO{Name: "", Price: "1.00"}, now)
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = NewProductFromDTO(ProductDTO{Name: "Widget", Price: "-1.00"}, now)
	assert.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestCategoryIDs(t *testing.T) {
	d := ProductDTO{Categories: []CategoryDTO{{ID: 1}, {ID: 3}}}
	assert.Equal(t, []int64{1, 3}, d.CategoryIDs())

	assert.Empty(t, ProductDTO{}.CategoryIDs())
}
