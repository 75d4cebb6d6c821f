package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
	"github.com/tkoval/catalog-service/internal/models/m_category"
)

// CategoryRepo is the Spanner implementation of the write-side category
// repository.
type CategoryRepo struct{}

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{}
}

func (r *CategoryRepo) InsertMut(c *domain.Category) *spanner.Mutation {
	if c == nil {
		return nil
	}
	return m_category.InsertMutation(c.ID(), c.Name(), c.CreatedAt().UTC(), c.UpdatedAt().UTC())
}

func (r *CategoryRepo) UpdateMut(id int64, c *domain.Category) *spanner.Mutation {
	if c == nil {
		return nil
	}
	return m_category.UpdateMutation(id, c.Name(), c.UpdatedAt().UTC())
}

func (r *CategoryRepo) DeleteMut(id int64) *spanner.Mutation {
	return m_category.DeleteMutation(id)
}
