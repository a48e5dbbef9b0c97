package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/id"
	"hardpos/internal/domain/customer"
)

// Compile-time check.
var _ customer.Repository = (*CustomerRepo)(nil)

// CustomerRepo persists customers.
type CustomerRepo struct {
	baseRepo
}

// NewCustomerRepo creates a customer repository.
func NewCustomerRepo(txManager *TxManager) *CustomerRepo {
	return &CustomerRepo{
		baseRepo: newBaseRepo(txManager, "customers", ExtractDBColumns[customer.Customer]()),
	}
}

func (r *CustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	return r.insert(ctx, c)
}

func (r *CustomerRepo) Update(ctx context.Context, c *customer.Customer) error {
	return r.update(ctx, c)
}

func (r *CustomerRepo) GetByID(ctx context.Context, customerID id.ID) (*customer.Customer, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"id": customerID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c customer.Customer
	if err := pgxscan.Get(ctx, r.querier(ctx), &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("customer", customerID.String())
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) FindByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"phone": phone}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c customer.Customer
	if err := pgxscan.Get(ctx, r.querier(ctx), &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("customer", phone)
		}
		return nil, fmt.Errorf("find customer by phone: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) List(ctx context.Context, f customer.Filter) ([]customer.Customer, error) {
	q := r.baseSelect().OrderBy("name ASC")

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"phone": pattern},
			squirrel.ILike{"email": pattern},
		})
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

	var customers []customer.Customer
	if err := pgxscan.Select(ctx, r.querier(ctx), &customers, sql, args...); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepo) GetStats(ctx context.Context) (customer.Stats, error) {
	sql := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'active') AS active,
			COALESCE(SUM(total_purchases), 0) AS total_sales
		FROM customers
	`

	var stats customer.Stats
	if err := pgxscan.Get(ctx, r.querier(ctx), &stats, sql); err != nil {
		return customer.Stats{}, fmt.Errorf("customer stats: %w", err)
	}
	return stats, nil
}
