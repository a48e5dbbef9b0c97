// Package activity records business events (bill created, stock adjusted,
// customer registered) for the dashboard's recent-activity feed.
package activity

import (
	"context"
	"encoding/json"
	"time"

	"hardpos/internal/core/id"
)

// Actions recorded by domain services.
const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionSale    = "sale"
	ActionRestock = "restock"
)

// Entry is a single recorded event. Payload carries the event snapshot and
// may be stored compressed; readers always see it decompressed.
type Entry struct {
	ID         id.ID           `db:"id" json:"id"`
	EntityType string          `db:"entity_type" json:"entityType"`
	EntityID   id.ID           `db:"entity_id" json:"entityId"`
	Action     string          `db:"action" json:"action"`
	Actor      string          `db:"actor" json:"actor,omitempty"`
	Summary    string          `db:"summary" json:"summary"`
	Payload    json.RawMessage `db:"payload" json:"payload,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
}

// Recorder appends entries to the activity log.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Reader lists recent entries, newest first.
type Reader interface {
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// New builds an Entry with generated id and timestamp. payload may be nil.
func New(entityType string, entityID id.ID, action, actor, summary string, payload any) Entry {
	e := Entry{
		ID:         id.New(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Actor:      actor,
		Summary:    summary,
		CreatedAt:  time.Now().UTC(),
	}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			e.Payload = raw
		}
	}
	return e
}
