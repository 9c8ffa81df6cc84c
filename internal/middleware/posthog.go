package middleware

import (
	"net/http"
	"strings"

	"github.com/egabank/egabank_portal/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks API events with PostHog
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		username, exists := GetUsernameFromContext(c)
		if !exists {
			return
		}

		// Event name from route path, e.g. "/api/v1/client/comptes" ->
		// "api_v1_client_comptes".
		event := strings.ReplaceAll(strings.Trim(c.FullPath(), "/"), "/", "_")
		if event == "" {
			return
		}

		posthogClient.Enqueue(username, event, map[string]any{
			"method": c.Request.Method,
			"status": c.Writer.Status(),
		})
	}
}
