package e2e

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

// catalogEvent is one outbox row as the tests see it. Aggregate ids are
// the int64 product/category identifiers; payloads are decoded with
// json.Number so snowflake-sized ids survive the round trip intact.
type catalogEvent struct {
	ID        string
	Type      string
	Status    string
	Payload   map[string]interface{}
	CreatedAt time.Time
}

// mustOutboxEvents loads every outbox row written for one aggregate, in
// commit order.
func mustOutboxEvents(ctx context.Context, t *testing.T, aggregateID int64) []catalogEvent {
	t.Helper()

	stmt := spanner.Statement{
		SQL: `SELECT event_id, event_type, payload, status, created_at
        FROM outbox_events
        WHERE aggregate_id = @id
        ORDER BY created_at ASC, event_id ASC`,
		Params: map[string]any{"id": strconv.FormatInt(aggregateID, 10)},
	}

	iter := spClient.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]catalogEvent, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out
		}
		require.NoError(t, err)

		var e catalogEvent
		var payload string
		require.NoError(t, row.Columns(&e.ID, &e.Type, &payload, &e.Status, &e.CreatedAt))

		dec := json.NewDecoder(strings.NewReader(payload))
		dec.UseNumber()
		require.NoError(t, dec.Decode(&e.Payload), "outbox payload must be valid JSON")

		out = append(out, e)
	}
}

// eventTypes flattens events to their type names for order assertions.
func eventTypes(events []catalogEvent) []string {
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

// payloadID reads an identifier field out of a decoded payload as int64.
func payloadID(t *testing.T, e catalogEvent, field string) int64 {
	t.Helper()
	num, ok := e.Payload[field].(json.Number)
	require.True(t, ok, "payload field %q must be a number", field)
	id, err := num.Int64()
	require.NoError(t, err)
	return id
}
