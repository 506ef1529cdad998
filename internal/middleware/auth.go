package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenValidator extracts the username from a session token.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// OptionalAuth attaches the username of a valid Bearer token to the
// request context under "username". Requests without a usable token
// pass through unchanged: the menu is never gated on login.
func OptionalAuth(tokens TokenValidator, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		username, err := tokens.ValidateToken(parts[1])
		if err != nil {
			if logger != nil {
				logger.Debug("ignoring session token", "error", err)
			}
			c.Next()
			return
		}

		c.Set("username", username)
		c.Next()
	}
}
