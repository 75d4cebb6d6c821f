package contracts

import (
	"context"

	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
	"github.com/tkoval/catalog-service/internal/app/catalog/dto"
)

// SortKey is one ordering criterion of a page request.
type SortKey struct {
	Field string
	Desc  bool
}

// PageRequest describes the requested slice of an ordered result set.
// Page numbers are 0-based.
type PageRequest struct {
	Page int
	Size int
	Sort []SortKey
}

// Offset returns the row offset of the page start.
func (p PageRequest) Offset() int64 {
	return int64(p.Page) * int64(p.Size)
}

// SearchFilter restricts the product search. Name is a case-insensitive
// substring match (empty matches all); CategoryID of 0 means no category
// filter. Identifier 0 is never allocated, so the sentinel is unambiguous.
type SearchFilter struct {
	Name       string
	CategoryID int64
}

// ProductReader is the read side of the product store.
type ProductReader interface {
	// Exists reports whether a product with the given identifier is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// Get loads a full product with its category references resolved.
	// Returns domain.ErrNotFound when the identifier is absent.
	Get(ctx context.Context, id int64) (*domain.Product, error)

	// Search returns one page of lightweight projections matching the
	// filter, plus the total match count across all pages. Rows from the
	// category join are never multiplied or reordered.
	Search(ctx context.Context, f SearchFilter, p PageRequest) ([]dto.ProductProjection, int64, error)

	// GetByIDs loads full products for the given identifiers in no
	// particular order. Missing identifiers are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error)

	// ResolveCategoryRefs resolves identifier-only references into
	// references carrying the category name. Returns domain.ErrNotFound
	// when any identifier has no stored category.
	ResolveCategoryRefs(ctx context.Context, refs []domain.CategoryRef) ([]domain.CategoryRef, error)
}

// CategoryReader is the read side of the category store.
type CategoryReader interface {
	Exists(ctx context.Context, id int64) (bool, error)

	// Get returns domain.ErrNotFound when the identifier is absent.
	Get(ctx context.Context, id int64) (*domain.Category, error)

	// List returns one page of categories ordered by name, plus the total
	// count.
	List(ctx context.Context, p PageRequest) ([]*domain.Category, int64, error)
}
