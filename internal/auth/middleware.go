package auth

import (
	"strings"

	"codeberg.org/moneyapi/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// validates bearer tokens and adds user info to context. with an empty
// secret authentication is disabled and every request passes.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.Unauthorized(c, "authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			errors.Unauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := ValidateJWT(secret, parts[1])
		if err != nil {
			errors.Unauthorized(c, "invalid or expired token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)

		c.Next()
	}
}
