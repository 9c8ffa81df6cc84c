package handlers

import (
	portssvc "github.com/egabank/egabank_portal/internal/core/ports/services"
	"github.com/egabank/egabank_portal/internal/middleware"
	"github.com/egabank/egabank_portal/internal/session"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	store *session.Store,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth, store)

	// Admin and client surfaces under /api/v1, each behind its role guard
	setupAdminRoutes(r, services, store)
	setupClientRoutes(r, services, store)
}

// setupAdminRoutes configures the /api/v1/admin group, reserved for the
// back-office role.
func setupAdminRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	store *session.Store,
) {
	admin := r.Group("/api/v1/admin", middleware.SessionAuth(store, session.RoleAdmin))

	registerDashboardRoutes(admin, services.Bank, services.Releve)
	registerClientRoutes(admin, services.Client)
	registerCompteRoutes(admin, services.Compte)
	registerTransactionRoutes(admin, services.Transaction)
}

// setupClientRoutes configures the /api/v1/client group, the logged-in
// client's self-service surface. Admins may use it too, the way they can
// browse the client area in the web app.
func setupClientRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	store *session.Store,
) {
	client := r.Group("/api/v1/client", middleware.SessionAuth(store, session.RoleClient, session.RoleAdmin))

	registerPortalRoutes(client, services.ClientBank)
}
