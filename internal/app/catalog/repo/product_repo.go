package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
	"github.com/tkoval/catalog-service/internal/models/m_product"
	"github.com/tkoval/catalog-service/internal/models/m_productcategory"
)

// ProductRepo is the Spanner implementation of the write-side product
// repository. It returns *spanner.Mutation objects but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion. It is
// unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	var description *string
	if d := p.Description(); d != "" {
		desc := d
		description = &desc
	}

	var imageURL *string
	if u := p.ImageURL(); u != "" {
		url := u
		imageURL = &url
	}

	return m_product.BuildInsertMap(p.ID(), p.Name(), description, p.Price().Rat(),
		imageURL, p.Date().UTC(), p.CreatedAt().UTC(), p.UpdatedAt().UTC())
}

// buildUpdateValues constructs the scalar overwrite map for an update.
// Every scalar column is written; created_at is left untouched.
func buildUpdateValues(p *domain.Product) map[string]interface{} {
	values := map[string]interface{}{
		m_product.ColName:      p.Name(),
		m_product.ColPrice:     p.Price().Rat(),
		m_product.ColDate:      p.Date().UTC(),
		m_product.ColUpdatedAt: p.UpdatedAt().UTC(),
	}

	if d := p.Description(); d != "" {
		values[m_product.ColDescription] = d
	} else {
		values[m_product.ColDescription] = nil
	}

	if u := p.ImageURL(); u != "" {
		values[m_product.ColImageURL] = u
	} else {
		values[m_product.ColImageURL] = nil
	}

	return values
}

// InsertMut builds an Insert mutation for a new product.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	return m_product.InsertMutation(buildInsertValues(p))
}

// UpdateMut builds an Update mutation overwriting the scalar columns of
// the product identified by id. The commit fails with a NotFound status
// when the row does not exist, which is exactly the deferred existence
// check the update path relies on.
func (r *ProductRepo) UpdateMut(id int64, p *domain.Product) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_product.UpdateMutation(id, buildUpdateValues(p))
}

// DeleteMut builds a Delete mutation for the product row.
func (r *ProductRepo) DeleteMut(id int64) *spanner.Mutation {
	return m_product.DeleteMutation(id)
}

// ClearCategoriesMut builds the key-range delete removing every category
// association of the product.
func (r *ProductRepo) ClearCategoriesMut(productID int64) *spanner.Mutation {
	return m_productcategory.DeleteByProductMutation(productID)
}

// CategoryMuts builds one association insert per category reference.
func (r *ProductRepo) CategoryMuts(productID int64, refs []domain.CategoryRef) []*spanner.Mutation {
	muts := make([]*spanner.Mutation, 0, len(refs))
	for _, ref := range refs {
		muts = append(muts, m_productcategory.InsertMutation(productID, ref.ID()))
	}
	return muts
}
