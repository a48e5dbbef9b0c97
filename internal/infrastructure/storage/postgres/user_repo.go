package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"hardpos/internal/core/apperror"
	"hardpos/internal/domain/auth"
)

// Compile-time check.
var _ auth.Repository = (*UserRepo)(nil)

// UserRepo persists user accounts.
type UserRepo struct {
	baseRepo
}

// NewUserRepo creates a user repository.
func NewUserRepo(txManager *TxManager) *UserRepo {
	return &UserRepo{
		baseRepo: newBaseRepo(txManager, "users", ExtractDBColumns[auth.User]()),
	}
}

func (r *UserRepo) Create(ctx context.Context, u *auth.User) error {
	return r.insert(ctx, u)
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u auth.User
	if err := pgxscan.Get(ctx, r.querier(ctx), &u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", username)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
