package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/id"
	"hardpos/internal/domain/calculation"
)

// Compile-time check.
var _ calculation.Repository = (*CalculationRepo)(nil)

// CalculationRepo persists saved calculations and their lines.
type CalculationRepo struct {
	baseRepo
	lineCols []string
}

// NewCalculationRepo creates a calculation repository.
func NewCalculationRepo(txManager *TxManager) *CalculationRepo {
	return &CalculationRepo{
		baseRepo: newBaseRepo(txManager, "calculations", ExtractDBColumns[calculation.Calculation]()),
		lineCols: ExtractDBColumns[calculation.Line](),
	}
}

func (r *CalculationRepo) Create(ctx context.Context, c *calculation.Calculation) error {
	if err := r.insert(ctx, c); err != nil {
		return err
	}

	for i := range c.Lines {
		c.Lines[i].CalculationID = c.ID
		if err := r.insertLine(ctx, &c.Lines[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *CalculationRepo) insertLine(ctx context.Context, line *calculation.Line) error {
	data := StructToMap(line)
	filtered := make(map[string]any, len(r.lineCols))
	for _, col := range r.lineCols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert("calculation_lines").
		SetMap(filtered).
		ToSql()
	if err != nil {
		return fmt.Errorf("build line insert: %w", err)
	}

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert calculation line: %w", err)
	}
	return nil
}

func (r *CalculationRepo) GetByID(ctx context.Context, calcID id.ID) (*calculation.Calculation, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"id": calcID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c calculation.Calculation
	if err := pgxscan.Get(ctx, r.querier(ctx), &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("calculation", calcID.String())
		}
		return nil, fmt.Errorf("get calculation: %w", err)
	}

	lines, err := r.loadLines(ctx, calcID)
	if err != nil {
		return nil, err
	}
	c.Lines = lines
	return &c, nil
}

func (r *CalculationRepo) loadLines(ctx context.Context, calcID id.ID) ([]calculation.Line, error) {
	sql, args, err := r.builder().
		Select(r.lineCols...).
		From("calculation_lines").
		Where(squirrel.Eq{"calculation_id": calcID}).
		OrderBy("line_no ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lines query: %w", err)
	}

	var lines []calculation.Line
	if err := pgxscan.Select(ctx, r.querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("load calculation lines: %w", err)
	}
	return lines, nil
}

func (r *CalculationRepo) Recent(ctx context.Context, limit int) ([]calculation.Calculation, error) {
	sql, args, err := r.baseSelect().
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var calcs []calculation.Calculation
	if err := pgxscan.Select(ctx, r.querier(ctx), &calcs, sql, args...); err != nil {
		return nil, fmt.Errorf("recent calculations: %w", err)
	}
	return calcs, nil
}
