package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/id"
	"hardpos/internal/domain/billing"
)

// Compile-time check.
var _ billing.Repository = (*BillRepo)(nil)

// BillRepo persists bills and their lines.
type BillRepo struct {
	baseRepo
	lineCols []string
}

// NewBillRepo creates a bill repository.
func NewBillRepo(txManager *TxManager) *BillRepo {
	return &BillRepo{
		baseRepo: newBaseRepo(txManager, "bills", ExtractDBColumns[billing.Bill]()),
		lineCols: ExtractDBColumns[billing.Line](),
	}
}

// Create inserts the bill header and all lines. Callers run this inside a
// transaction so a failed line insert rolls back the header.
func (r *BillRepo) Create(ctx context.Context, b *billing.Bill) error {
	if err := r.insert(ctx, b); err != nil {
		return err
	}

	for i := range b.Lines {
		b.Lines[i].BillID = b.ID
		if err := r.insertLine(ctx, &b.Lines[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *BillRepo) insertLine(ctx context.Context, line *billing.Line) error {
	data := StructToMap(line)
	filtered := make(map[string]any, len(r.lineCols))
	for _, col := range r.lineCols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert("bill_lines").
		SetMap(filtered).
		ToSql()
	if err != nil {
		return fmt.Errorf("build line insert: %w", err)
	}

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert bill line: %w", err)
	}
	return nil
}

func (r *BillRepo) GetByID(ctx context.Context, billID id.ID) (*billing.Bill, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"id": billID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var b billing.Bill
	if err := pgxscan.Get(ctx, r.querier(ctx), &b, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("bill", billID.String())
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}

	lines, err := r.loadLines(ctx, billID)
	if err != nil {
		return nil, err
	}
	b.Lines = lines
	return &b, nil
}

func (r *BillRepo) loadLines(ctx context.Context, billID id.ID) ([]billing.Line, error) {
	sql, args, err := r.builder().
		Select(r.lineCols...).
		From("bill_lines").
		Where(squirrel.Eq{"bill_id": billID}).
		OrderBy("line_no ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lines query: %w", err)
	}

	var lines []billing.Line
	if err := pgxscan.Select(ctx, r.querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("load bill lines: %w", err)
	}
	return lines, nil
}

func (r *BillRepo) Recent(ctx context.Context, limit int) ([]billing.Bill, error) {
	sql, args, err := r.baseSelect().
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var bills []billing.Bill
	if err := pgxscan.Select(ctx, r.querier(ctx), &bills, sql, args...); err != nil {
		return nil, fmt.Errorf("recent bills: %w", err)
	}
	return bills, nil
}
