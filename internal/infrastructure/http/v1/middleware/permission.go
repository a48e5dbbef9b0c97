package middleware

import (
	"github.com/gin-gonic/gin"

	"hardpos/internal/core/apperror"
	appctx "hardpos/internal/core/context"
	"hardpos/internal/core/security"
)

// RequirePolicy middleware enforces a compiled access policy on the route.
// The request must already carry an authenticated user (Auth middleware).
func RequirePolicy(policy *security.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := appctx.GetUser(c.Request.Context())
		if user == nil {
			_ = c.Error(apperror.NewUnauthorized("authentication required"))
			c.Abort()
			return
		}

		if err := policy.Check(user.Role, user.Username, c.Request.Method); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Next()
	}
}
