package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds the spanner.Insert recording one catalog domain
// event. processed_at starts NULL; whatever relays the outbox fills it in
// once the event has been shipped.
func InsertMutation(eventID, eventType, aggregateID, payload, status string, createdAt time.Time) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColEventID, ColEventType, ColAggregateID, ColPayload, ColStatus, ColCreatedAt, ColProcessedAt},
		[]interface{}{eventID, eventType, aggregateID, payload, status, createdAt, nil})
}
