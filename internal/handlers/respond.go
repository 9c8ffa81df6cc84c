package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/egabank/egabank_portal/internal/apperrors"
	"github.com/egabank/egabank_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError translates the portal error taxonomy into HTTP responses.
// Business rejections carry the backend message verbatim; an unauthorized
// error means the session has already been torn down by the gateway hook, so
// the client is pointed back to login.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("backend refused credentials", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired", "redirect": "/auth/login"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRejected):
		logger.Warn("backend rejected operation", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
