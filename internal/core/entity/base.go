// Package entity provides base types shared by all persisted aggregates.
package entity

import (
	"context"
	"time"

	"hardpos/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Base contains common fields for all persisted entities.
type Base struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// Version for optimistic locking (incremented on each update)
	Version int `db:"version" json:"version"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewBase creates a new Base with generated ID and timestamps.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        id.New(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch increments version and bumps UpdatedAt (for optimistic locking).
func (b *Base) Touch() {
	b.Version++
	b.UpdatedAt = time.Now().UTC()
}
