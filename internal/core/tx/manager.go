// Package tx defines the transaction boundary contract used by domain services.
// The concrete implementation lives in the postgres infrastructure package.
package tx

import "context"

// Manager runs a function within a database transaction.
// The transaction is committed if fn returns nil, rolled back otherwise.
// Nested calls join the outer transaction.
type Manager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
