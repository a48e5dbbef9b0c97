package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hardpos/internal/core/apperror"
	appctx "hardpos/internal/core/context"
)

// JWTValidator interface for token validation.
type JWTValidator interface {
	ValidateToken(tokenString string) (*appctx.UserContext, error)
}

// Auth middleware validates JWT tokens and populates user context.
func Auth(validator JWTValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		user, err := validator.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		ctx := appctx.WithUser(c.Request.Context(), user)
		c.Request = c.Request.WithContext(ctx)

		// Store in gin context for easy access
		c.Set("user_id", user.UserID)
		c.Set("role", user.Role)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}
