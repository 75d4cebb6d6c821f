package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/tkoval/catalog-service/internal/app/catalog/contracts"
	"github.com/tkoval/catalog-service/internal/models/m_outbox"
)

// OutboxRepo is the Spanner implementation of the transactional outbox
// repository. It returns *spanner.Mutation but never applies it.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}
	return m_outbox.InsertMutation(e.EventID, e.EventType, e.AggregateID,
		e.PayloadJSON, e.Status, e.CreatedAtUTC)
}
