package queries

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/tkoval/catalog-service/internal/app/catalog/contracts"
	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
)

// CategoryReader is the Spanner read model for categories.
type CategoryReader struct {
	client *spanner.Client
}

func NewCategoryReader(client *spanner.Client) *CategoryReader {
	return &CategoryReader{client: client}
}

func (q *CategoryReader) Exists(ctx context.Context, id int64) (bool, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT c.category_id FROM categories c WHERE c.category_id = @id`,
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

func (q *CategoryReader) Get(ctx context.Context, id int64) (*domain.Category, error) {
	stmt := spanner.Statement{
		SQL: `SELECT c.category_id, c.name, c.created_at, c.updated_at
		      FROM categories c WHERE c.category_id = @id`,
		Params: map[string]interface{}{"id": id},
	}

	iter := q.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return scanCategory(row)
}

// List returns one page of categories ordered by name plus the total count.
func (q *CategoryReader) List(ctx context.Context, p contracts.PageRequest) ([]*domain.Category, int64, error) {
	countStmt := spanner.Statement{SQL: `SELECT COUNT(*) FROM categories`}

	countIter := q.client.Single().Query(ctx, countStmt)
	defer countIter.Stop()

	countRow, err := countIter.Next()
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := countRow.Columns(&total); err != nil {
		return nil, 0, err
	}

	stmt := spanner.Statement{
		SQL: `SELECT c.category_id, c.name, c.created_at, c.updated_at
		      FROM categories c
		      ORDER BY c.name ASC, c.category_id ASC
		      LIMIT @limit OFFSET @offset`,
		Params: map[string]interface{}{
			"limit":  int64(p.Size),
			"offset": p.Offset(),
		},
	}

	iter := q.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*domain.Category
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, total, nil
		}
		if err != nil {
			return nil, 0, err
		}
		c, err := scanCategory(row)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
}

func scanCategory(row *spanner.Row) (*domain.Category, error) {
	var (
		id                   int64
		name                 string
		createdAt, updatedAt time.Time
	)
	if err := row.Columns(&id, &name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return domain.ReconstructCategory(id, name, createdAt.UTC(), updatedAt.UTC()), nil
}
