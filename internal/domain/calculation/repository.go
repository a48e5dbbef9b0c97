package calculation

import (
	"context"

	"hardpos/internal/core/id"
)

// Repository persists calculations.
type Repository interface {
	// Create inserts the calculation and its lines.
	Create(ctx context.Context, c *Calculation) error

	// GetByID returns the calculation with lines loaded.
	GetByID(ctx context.Context, calcID id.ID) (*Calculation, error)

	// Recent returns the newest calculations, without lines.
	Recent(ctx context.Context, limit int) ([]Calculation, error)
}
