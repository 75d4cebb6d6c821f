package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tkoval/catalog-service/internal/app/catalog/contracts"
	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
)

// newOutboxEvent enriches a domain event into its persisted outbox form.
func newOutboxEvent(ev domain.DomainEvent, now time.Time) (*contracts.OutboxEvent, error) {
	payload, err := marshalEventPayload(ev)
	if err != nil {
		return nil, err
	}
	return &contracts.OutboxEvent{
		EventID:      uuid.New().String(),
		EventType:    ev.EventType(),
		AggregateID:  ev.AggregateID(),
		PayloadJSON:  payload,
		Status:       "pending",
		CreatedAtUTC: now,
	}, nil
}

// marshalEventPayload serializes a domain event for the outbox. The domain
// layer stays free of serialization concerns; this adapter extracts the
// primitives.
func marshalEventPayload(ev domain.DomainEvent) (string, error) {
	var payload map[string]interface{}

	switch e := ev.(type) {
	case *domain.ProductCreated:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"name":        e.Name,
			"occurred_at": e.At,
		}
	case *domain.ProductUpdated:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"occurred_at": e.At,
		}
	case *domain.ProductDeleted:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"occurred_at": e.At,
		}
	case *domain.CategoryCreated:
		payload = map[string]interface{}{
			"category_id": e.CategoryID,
			"name":        e.Name,
			"occurred_at": e.At,
		}
	case *domain.CategoryUpdated:
		payload = map[string]interface{}{
			"category_id": e.CategoryID,
			"name":        e.Name,
			"occurred_at": e.At,
		}
	case *domain.CategoryDeleted:
		payload = map[string]interface{}{
			"category_id": e.CategoryID,
			"occurred_at": e.At,
		}
	default:
		b, err := json.Marshal(ev)
		if err != nil {
			return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
		}
		return string(b), nil
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}
