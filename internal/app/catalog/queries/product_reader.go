package queries

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/tkoval/catalog-service/internal/app/catalog/contracts"
	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
	"github.com/tkoval/catalog-service/internal/app/catalog/dto"
)

// sortColumns whitelists the fields a page request may sort by, mapping
// them to their column names.
var sortColumns = map[string]string{
	"id":    "product_id",
	"name":  "name",
	"price": "price",
	"date":  "date",
}

// ProductReader is the Spanner read model for products.
type ProductReader struct {
	client *spanner.Client
}

func NewProductReader(client *spanner.Client) *ProductReader {
	return &ProductReader{client: client}
}

// Exists reports whether a product row with the given identifier exists.
func (q *ProductReader) Exists(ctx context.Context, id int64) (bool, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT p.product_id FROM products p WHERE p.product_id = @id`,
		Params: map[string]interface{}{"id": id},
	}

	iter := q.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

const productSelect = `
	SELECT p.product_id, p.name, p.description, p.price, p.image_url,
	       p.date, p.created_at, p.updated_at,
	       ARRAY(
	           SELECT AS STRUCT c.category_id, c.name
	           FROM product_categories pc
	           JOIN categories c ON c.category_id = pc.category_id
	           WHERE pc.product_id = p.product_id
	           ORDER BY c.category_id
	       ) AS categories
	FROM products p`

// categoryStructRow receives one element of the categories ARRAY<STRUCT>.
type categoryStructRow struct {
	CategoryID int64  `spanner:"category_id"`
	Name       string `spanner:"name"`
}

// Get loads one product with its category references resolved.
func (q *ProductReader) Get(ctx context.Context, id int64) (*domain.Product, error) {
	stmt := spanner.Statement{
		SQL:    productSelect + ` WHERE p.product_id = @id`,
		Params: map[string]interface{}{"id": id},
	}

	iter := q.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return scanProduct(row)
}

// GetByIDs loads full products for the given identifiers. The result
// carries no ordering guarantee; callers reassemble page order themselves.
func (q *ProductReader) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	stmt := spanner.Statement{
		SQL:    productSelect + ` WHERE p.product_id IN UNNEST(@ids)`,
		Params: map[string]interface{}{"ids": ids},
	}

	iter := q.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*domain.Product
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		p, err := scanProduct(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
}

func scanProduct(row *spanner.Row) (*domain.Product, error) {
	var (
		id                   int64
		name                 string
		description          spanner.NullString
		price                big.Rat
		imageURL             spanner.NullString
		date                 time.Time
		createdAt, updatedAt time.Time
		cats                 []*categoryStructRow
	)

	if err := row.Columns(&id, &name, &description, &price, &imageURL,
		&date, &createdAt, &updatedAt, &cats); err != nil {
		return nil, err
	}

	refs := make([]domain.CategoryRef, 0, len(cats))
	for _, c := range cats {
		refs = append(refs, domain.ResolvedCategoryRef(c.CategoryID, c.Name))
	}

	return domain.ReconstructProduct(id, name, description.StringVal,
		domain.NewMoneyFromRat(&price), imageURL.StringVal,
		date.UTC(), createdAt.UTC(), updatedAt.UTC(), refs), nil
}

// searchPredicate is shared by the projection and count queries so both
// passes agree on what matches. The category restriction is an EXISTS
// semijoin, so the many-to-many join can never multiply rows.
const searchPredicate = `
	WHERE (@name = '' OR LOWER(p.name) LIKE CONCAT('%', LOWER(@name), '%'))
	  AND (@category_id = 0 OR EXISTS (
	      SELECT 1 FROM product_categories pc
	      WHERE pc.product_id = p.product_id AND pc.category_id = @category_id))`

// Search returns one page of projections matching the filter plus the
// total match count. This is the first pass of the two-pass search.
func (q *ProductReader) Search(ctx context.Context, f contracts.SearchFilter, p contracts.PageRequest) ([]dto.ProductProjection, int64, error) {
	params := map[string]interface{}{
		"name":        f.Name,
		"category_id": f.CategoryID,
	}

	countStmt := spanner.Statement{
		SQL:    `SELECT COUNT(*) FROM products p` + searchPredicate,
		Params: params,
	}

	var total int64
	if err := q.queryCount(ctx, countStmt, &total); err != nil {
		return nil, 0, err
	}

	pageParams := map[string]interface{}{
		"name":        f.Name,
		"category_id": f.CategoryID,
		"limit":       int64(p.Size),
		"offset":      p.Offset(),
	}

	pageStmt := spanner.Statement{
		SQL: `SELECT p.product_id, p.name FROM products p` + searchPredicate +
			orderByClause(p.Sort) + ` LIMIT @limit OFFSET @offset`,
		Params: pageParams,
	}

	iter := q.client.Single().Query(ctx, pageStmt)
	defer iter.Stop()

	var out []dto.ProductProjection
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, total, nil
		}
		if err != nil {
			return nil, 0, err
		}

		var proj dto.ProductProjection
		if err := row.Columns(&proj.ID, &proj.Name); err != nil {
			return nil, 0, err
		}
		out = append(out, proj)
	}
}

// ResolveCategoryRefs resolves identifier-only references into references
// carrying names, in input order. Any identifier with no stored category
// fails the whole resolution with domain.ErrNotFound.
func (q *ProductReader) ResolveCategoryRefs(ctx context.Context, refs []domain.CategoryRef) ([]domain.CategoryRef, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID())
	}

	stmt := spanner.Statement{
		SQL:    `SELECT c.category_id, c.name FROM categories c WHERE c.category_id IN UNNEST(@ids)`,
		Params: map[string]interface{}{"ids": ids},
	}

	iter := q.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	names := make(map[int64]string, len(ids))
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var id int64
		var name string
		if err := row.Columns(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}

	resolved := make([]domain.CategoryRef, 0, len(refs))
	for _, ref := range refs {
		name, ok := names[ref.ID()]
		if !ok {
			return nil, fmt.Errorf("category %d: %w", ref.ID(), domain.ErrNotFound)
		}
		resolved = append(resolved, domain.ResolvedCategoryRef(ref.ID(), name))
	}
	return resolved, nil
}

func (q *ProductReader) queryCount(ctx context.Context, stmt spanner.Statement, total *int64) error {
	iter := q.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return err
	}
	return row.Columns(total)
}

// orderByClause builds the ORDER BY from whitelisted sort keys, always
// appending product_id so pages tie-break deterministically when the
// declared key is non-unique.
func orderByClause(sort []contracts.SortKey) string {
	var parts []string
	for _, key := range sort {
		col, ok := sortColumns[key.Field]
		if !ok {
			continue
		}
		dir := "ASC"
		if key.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	parts = append(parts, "product_id ASC")
	return " ORDER BY " + strings.Join(parts, ", ")
}
