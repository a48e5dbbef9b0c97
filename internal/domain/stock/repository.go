package stock

import (
	"context"

	"hardpos/internal/core/id"
)

// Filter narrows List results.
type Filter struct {
	// Search matches item names case-insensitively (substring).
	Search string

	// Category filters to a single category; empty means all.
	Category string

	// LowOnly keeps only items at or below their minimum threshold
	// (including out-of-stock).
	LowOnly bool

	Limit  int
	Offset int
}

// Counts aggregates stock health for the dashboard.
type Counts struct {
	Total      int64 `db:"total"`
	LowStock   int64 `db:"low_stock"`
	OutOfStock int64 `db:"out_of_stock"`
}

// Repository persists stock items.
type Repository interface {
	Create(ctx context.Context, item *Item) error

	// Update writes the item with optimistic locking on Version.
	Update(ctx context.Context, item *Item) error

	GetByID(ctx context.Context, itemID id.ID) (*Item, error)
	List(ctx context.Context, f Filter) ([]Item, error)
	CountByStatus(ctx context.Context) (Counts, error)
}
