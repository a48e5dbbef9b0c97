package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"hardpos/internal/core/apperror"
)

// baseRepo provides shared insert and update plumbing for repositories.
// Column lists are derived once from "db" tags at construction time.
type baseRepo struct {
	txManager *TxManager
	tableName string
	cols      []string
}

func newBaseRepo(txManager *TxManager, tableName string, cols []string) baseRepo {
	return baseRepo{txManager: txManager, tableName: tableName, cols: cols}
}

// builder returns a squirrel builder with PostgreSQL placeholder format.
func (r *baseRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *baseRepo) querier(ctx context.Context) Querier {
	return r.txManager.GetQuerier(ctx)
}

// insert writes the entity using its "db" tags, keeping only known columns.
func (r *baseRepo) insert(ctx context.Context, entity any) error {
	data := StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	filtered := make(map[string]any, len(r.cols))
	for _, col := range r.cols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert(r.tableName).
		SetMap(filtered).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", r.tableName, err)
	}
	return nil
}

// update modifies an existing entity with optimistic locking on version.
// The caller is expected to have bumped the entity's version via Touch;
// the WHERE clause matches the previous version.
func (r *baseRepo) update(ctx context.Context, entity any) error {
	data := StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	entityID, ok := data["id"]
	if !ok {
		return fmt.Errorf("entity has no 'id' field with db tag")
	}

	version, ok := data["version"].(int)
	if !ok {
		return fmt.Errorf("entity has no 'version' field or it is not an int")
	}

	filtered := make(map[string]any, len(r.cols))
	for _, col := range r.cols {
		if col == "id" {
			continue
		}
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Update(r.tableName).
		SetMap(filtered).
		Where(squirrel.Eq{"id": entityID}).
		Where(squirrel.Eq{"version": version - 1}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tableName, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification(r.tableName, entityID)
	}
	return nil
}

// baseSelect creates a SELECT builder over the known columns.
func (r *baseRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(r.cols...).
		From(r.tableName)
}
