package reports

import (
	"context"
	"time"

	"hardpos/internal/core/types"
)

// Repository aggregates sales figures from persisted bills.
type Repository interface {
	// SalesSince sums bill totals created at or after the given instant.
	SalesSince(ctx context.Context, since time.Time) (types.Money, error)
}
