package contracts

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
)

// ProductRepo is the write-side repository for products. Methods build
// Spanner mutations; they never apply them. The committer applies a full
// plan atomically so an entity and its associations commit together.
type ProductRepo interface {
	// InsertMut returns a mutation inserting the product row.
	InsertMut(p *domain.Product) *spanner.Mutation

	// UpdateMut returns a mutation overwriting every scalar column of the
	// product identified by id. Applying it to an absent row fails the
	// commit with a NotFound status.
	UpdateMut(id int64, p *domain.Product) *spanner.Mutation

	// DeleteMut returns a mutation deleting the product row.
	DeleteMut(id int64) *spanner.Mutation

	// ClearCategoriesMut returns a mutation removing every category
	// association of the product.
	ClearCategoriesMut(productID int64) *spanner.Mutation

	// CategoryMuts returns mutations inserting one association row per
	// reference.
	CategoryMuts(productID int64, refs []domain.CategoryRef) []*spanner.Mutation
}

// CategoryRepo is the write-side repository for categories.
type CategoryRepo interface {
	InsertMut(c *domain.Category) *spanner.Mutation
	UpdateMut(id int64, c *domain.Category) *spanner.Mutation
	DeleteMut(id int64) *spanner.Mutation
}

// OutboxEvent is the persisted form of a domain event.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}

// OutboxRepo builds mutations for the transactional outbox.
type OutboxRepo interface {
	InsertMut(e *OutboxEvent) *spanner.Mutation
}
