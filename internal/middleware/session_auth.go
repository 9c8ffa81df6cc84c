package middleware

import (
	"log/slog"
	"net/http"

	"github.com/egabank/egabank_portal/internal/session"
	"github.com/gin-gonic/gin"
)

// SessionAuth guards a route group behind the session store, the portal
// equivalent of the front-end route guards. When roles are given the
// logged-in user must hold one of them.
func SessionAuth(store *session.Store, roles ...session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		user := store.Current()
		if user == nil {
			logger.Warn("unauthenticated request on protected route")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": "/auth/login"})
			return
		}

		if len(roles) > 0 && !hasRole(user.Role, roles) {
			logger.Warn("role not allowed on route", slog.String("role", string(user.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}

		ctx := withUsername(c.Request.Context(), user.Username)
		enriched := logger.With(slog.String("username", user.Username), slog.String("role", string(user.Role)))
		c.Request = c.Request.WithContext(withLogger(ctx, enriched))

		c.Next()
	}
}

func hasRole(role session.Role, allowed []session.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
