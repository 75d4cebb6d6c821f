package dto

import (
	"time"

	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
)

// FromProduct maps a product entity to its transfer object, flattening the
// category references to identifier+name pairs. Unresolved references are
// carried as identifier-only entries; reads always resolve them first.
func FromProduct(p *domain.Product) ProductDTO {
	cats := make([]CategoryDTO, 0, len(p.Categories()))
	for _, ref := range p.Categories() {
		cats = append(cats, FromCategoryRef(ref))
	}
	return ProductDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().String(),
		ImageURL:    p.ImageURL(),
		Date:        p.Date(),
		Categories:  cats,
	}
}

// NewProductFromDTO builds a transient product from the scalar fields of a
// transfer object. Category references are attached separately once
// resolved against the store.
func NewProductFromDTO(d ProductDTO, now time.Time) (*domain.Product, error) {
	price, err := domain.NewMoneyFromDecimal(d.Price)
	if err != nil {
		return nil, err
	}
	return domain.NewProduct(d.Name, d.Description, price, d.ImageURL, d.Date, now)
}

// FromCategory maps a category entity to its transfer object.
func FromCategory(c *domain.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID(), Name: c.Name()}
}

// FromCategoryRef maps a resolved reference to a transfer object without
// requiring a full entity fetch.
func FromCategoryRef(ref domain.CategoryRef) CategoryDTO {
	name, _ := ref.Name()
	return CategoryDTO{ID: ref.ID(), Name: name}
}
