package events

import (
	"encoding/json"
	"time"
)

const (
	TypeCreate = "create"
	TypeUpdate = "update"
	TypeDelete = "delete"
)

// ChangeEvent is the shared entity-change notification shape used in brandcast.
// OldData is set on updates only and carries the pre-mutation snapshot.
type ChangeEvent struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
	OldData    json.RawMessage `json:"old_data,omitempty"`
}

// Topic returns the bus topic carrying change events for an entity type.
func Topic(entityType string) string {
	return entityType + ".changed"
}
