package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/id"
	"hardpos/internal/domain/stock"
)

// Compile-time check.
var _ stock.Repository = (*StockRepo)(nil)

// StockRepo persists stock items.
type StockRepo struct {
	baseRepo
}

// NewStockRepo creates a stock repository.
func NewStockRepo(txManager *TxManager) *StockRepo {
	return &StockRepo{
		baseRepo: newBaseRepo(txManager, "stock_items", ExtractDBColumns[stock.Item]()),
	}
}

func (r *StockRepo) Create(ctx context.Context, item *stock.Item) error {
	return r.insert(ctx, item)
}

func (r *StockRepo) Update(ctx context.Context, item *stock.Item) error {
	return r.update(ctx, item)
}

func (r *StockRepo) GetByID(ctx context.Context, itemID id.ID) (*stock.Item, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"id": itemID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var item stock.Item
	if err := pgxscan.Get(ctx, r.querier(ctx), &item, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("stock item", itemID.String())
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &item, nil
}

func (r *StockRepo) List(ctx context.Context, f stock.Filter) ([]stock.Item, error) {
	q := r.baseSelect().OrderBy("name ASC")

	if f.Search != "" {
		q = q.Where(squirrel.ILike{"name": "%" + f.Search + "%"})
	}
	if f.Category != "" {
		q = q.Where(squirrel.Eq{"category": f.Category})
	}
	if f.LowOnly {
		q = q.Where(squirrel.Expr("quantity <= min_quantity"))
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []stock.Item
	if err := pgxscan.Select(ctx, r.querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	return items, nil
}

func (r *StockRepo) CountByStatus(ctx context.Context) (stock.Counts, error) {
	// Status is derived, so the buckets are computed from the same
	// quantity/min_quantity rule the classifier uses.
	sql := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE quantity > 0 AND quantity <= min_quantity) AS low_stock,
			COUNT(*) FILTER (WHERE quantity = 0) AS out_of_stock
		FROM stock_items
	`

	var counts stock.Counts
	if err := pgxscan.Get(ctx, r.querier(ctx), &counts, sql); err != nil {
		return stock.Counts{}, fmt.Errorf("count stock by status: %w", err)
	}
	return counts, nil
}
