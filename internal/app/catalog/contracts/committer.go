package contracts

import (
	"context"

	commitplan "github.com/tkoval/catalog-service/internal/pkg/committer"
)

// Committer applies a collection of mutations as a single all-or-nothing
// transaction. Either the entity and all of its association rows are
// committed together, or none are. Errors come back as raw storage errors;
// the service layer owns their classification.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
