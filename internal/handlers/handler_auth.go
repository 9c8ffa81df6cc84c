package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/egabank/egabank_portal/internal/apperrors"
	portssvc "github.com/egabank/egabank_portal/internal/core/ports/services"
	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/middleware"
	"github.com/egabank/egabank_portal/internal/session"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, registration and session inspection.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	store       *session.Store
}

func newAuthHandler(authService portssvc.AuthSvcFacade, store *session.Store) *authHandler {
	return &authHandler{authService: authService, store: store}
}

func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade, store *session.Store) {
	h := newAuthHandler(authService, store)

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/register", h.register)
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.me)
	}
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		// Auth failures here stay on the login form; no session teardown,
		// no redirect, so the form can show its own message.
		if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrRejected) {
			logger.Warn("login refused", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants incorrects"})
			return
		}
		respondError(c, err, "login failed")
		return
	}

	logger.Info("login succeeded", slog.String("username", user.Username), slog.String("role", string(user.Role)))
	c.JSON(http.StatusOK, user)
}

func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "registration failed")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *authHandler) logout(c *gin.Context) {
	h.authService.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// me reports the current session, the portal's equivalent of reading the
// persisted user record on page load.
func (h *authHandler) me(c *gin.Context) {
	user := h.store.Current()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": "/auth/login"})
		return
	}
	c.JSON(http.StatusOK, user)
}
