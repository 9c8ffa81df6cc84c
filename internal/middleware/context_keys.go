package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context keys set by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	usernameKey  = contextKey("username")
)

// GetUsernameFromContext retrieves the logged-in username placed in the
// request context by the session middleware.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(usernameKey); v != nil {
		username, ok := v.(string)
		return username, ok
	}
	return "", false
}

// withUsername stores the username in a request context.
func withUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}
