package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardpos/internal/core/apperror"
)

func TestCompile_InvalidExpressions(t *testing.T) {
	_, err := Compile(`role ==`)
	assert.Error(t, err)

	// Well-formed but not bool-typed.
	_, err = Compile(`role`)
	assert.Error(t, err)
}

func TestPolicy_Check(t *testing.T) {
	manage := MustCompile(ExprManageStock)

	require.NoError(t, manage.Check("admin", "asha", "POST"))
	require.NoError(t, manage.Check("manager", "ravi", "PUT"))

	err := manage.Check("staff", "kiran", "POST")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}

func TestPolicy_Authenticated(t *testing.T) {
	auth := MustCompile(ExprAuthenticated)

	assert.NoError(t, auth.Check("staff", "kiran", "GET"))
	assert.Error(t, auth.Check("", "", "GET"))
}
