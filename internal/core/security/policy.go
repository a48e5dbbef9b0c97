// Package security provides role-based access policies for HTTP routes.
// Policies are CEL expressions over the authenticated user, so operators can
// tighten who may mutate stock or customer records without a rebuild.
package security

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"hardpos/internal/core/apperror"
)

// Default policy expressions. Staff can sell and bill; only admins and
// managers may change the stock catalog or customer records.
const (
	ExprAuthenticated = `role != ""`
	ExprManageStock   = `role in ["admin", "manager"]`
	ExprManageUsers   = `role == "admin"`
)

// Policy is a compiled access rule evaluated per request.
type Policy struct {
	expr string
	prg  cel.Program
}

// Compile builds a Policy from a CEL expression.
// The expression must evaluate to bool and may reference:
//   - role:   the authenticated user's role ("admin", "manager", "staff")
//   - user:   the username
//   - method: the HTTP method of the request
func Compile(expr string) (*Policy, error) {
	env, err := cel.NewEnv(
		cel.Variable("role", cel.StringType),
		cel.Variable("user", cel.StringType),
		cel.Variable("method", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("create cel env: %w", err)
	}

	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compile policy %q: %w", expr, iss.Err())
	}
	if ast.OutputType() != cel.BoolType {
		return nil, fmt.Errorf("policy %q must evaluate to bool, got %s", expr, ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build program: %w", err)
	}

	return &Policy{expr: expr, prg: prg}, nil
}

// MustCompile compiles a policy, panicking on error. Use for the built-in
// expressions wired at startup.
func MustCompile(expr string) *Policy {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Expr returns the source expression (for logging).
func (p *Policy) Expr() string {
	return p.expr
}

// Check evaluates the policy for the given request attributes.
// Returns a Forbidden AppError when the policy denies access.
func (p *Policy) Check(role, user, method string) error {
	out, _, err := p.prg.Eval(map[string]any{
		"role":   role,
		"user":   user,
		"method": method,
	})
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("evaluate policy %q: %w", p.expr, err))
	}

	allowed, ok := out.Value().(bool)
	if !ok {
		return apperror.NewInternal(fmt.Errorf("policy %q returned non-bool", p.expr))
	}
	if !allowed {
		return apperror.NewForbidden("you do not have permission for this operation")
	}
	return nil
}
