// Package auth provides authentication and authorization domain logic.
package auth

import (
	"context"
	"strings"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/entity"
)

// Roles. Staff can bill and sell; managers additionally manage the stock
// and customer catalogs; admins manage users.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User is a store employee account.
type User struct {
	entity.Base

	Username     string `db:"username" json:"username"`
	DisplayName  string `db:"display_name" json:"displayName"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
	Disabled     bool   `db:"disabled" json:"disabled"`
}

// Validate implements entity.Validatable.
func (u *User) Validate(ctx context.Context) error {
	if strings.TrimSpace(u.Username) == "" {
		return apperror.NewValidation("username is required").
			WithDetail("field", "username")
	}
	if u.PasswordHash == "" {
		return apperror.NewValidation("password is required").
			WithDetail("field", "password")
	}
	if !isValidRole(u.Role) {
		return apperror.NewValidation("invalid role").
			WithDetail("field", "role").
			WithDetail("value", u.Role)
	}
	return nil
}

func isValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}
