package postgres

import (
	"context"
	"fmt"
	"time"

	"hardpos/internal/core/types"
	"hardpos/internal/domain/reports"
)

// Compile-time check.
var _ reports.Repository = (*SalesRepo)(nil)

// SalesRepo aggregates sales figures from persisted bills.
type SalesRepo struct {
	txManager *TxManager
}

// NewSalesRepo creates a sales aggregation repository.
func NewSalesRepo(txManager *TxManager) *SalesRepo {
	return &SalesRepo{txManager: txManager}
}

// SalesSince sums bill subtotals created at or after the given instant.
// Bills carry no discount or tax, so subtotal is the amount paid.
func (r *SalesRepo) SalesSince(ctx context.Context, since time.Time) (types.Money, error) {
	var total types.Money
	err := r.txManager.GetQuerier(ctx).QueryRow(ctx, `
		SELECT COALESCE(SUM(subtotal), 0)
		FROM bills
		WHERE created_at >= $1
	`, since).Scan(&total)
	if err != nil {
		return types.Zero(), fmt.Errorf("sales since: %w", err)
	}
	return total, nil
}
