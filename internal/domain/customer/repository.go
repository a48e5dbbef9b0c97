package customer

import (
	"context"

	"hardpos/internal/core/id"
	"hardpos/internal/core/types"
)

// Filter narrows List results.
type Filter struct {
	// Search matches name, phone or email case-insensitively.
	Search string
	Limit  int
	Offset int
}

// Stats aggregates the customer page header figures.
type Stats struct {
	Total       int64       `db:"total"`
	Active      int64       `db:"active"`
	TotalSales  types.Money `db:"total_sales"`
}

// Repository persists customers.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, customerID id.ID) (*Customer, error)

	// FindByPhone returns the customer with the exact phone number,
	// or a not-found error.
	FindByPhone(ctx context.Context, phone string) (*Customer, error)

	List(ctx context.Context, f Filter) ([]Customer, error)
	GetStats(ctx context.Context) (Stats, error)
}
