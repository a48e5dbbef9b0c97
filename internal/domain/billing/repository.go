package billing

import (
	"context"

	"hardpos/internal/core/id"
)

// Repository persists bills.
type Repository interface {
	// Create inserts the bill and its lines.
	Create(ctx context.Context, b *Bill) error

	// GetByID returns the bill with lines loaded.
	GetByID(ctx context.Context, billID id.ID) (*Bill, error)

	// Recent returns the newest bills, without lines.
	Recent(ctx context.Context, limit int) ([]Bill, error)
}
