package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/egabank/egabank_portal/internal/core/ports/services"
	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/middleware"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/gin-gonic/gin"
)

// compteHandler exposes the admin-side account management endpoints.
type compteHandler struct {
	compteService portssvc.CompteSvcFacade
}

func newCompteHandler(compteService portssvc.CompteSvcFacade) *compteHandler {
	return &compteHandler{compteService: compteService}
}

func registerCompteRoutes(rg *gin.RouterGroup, compteService portssvc.CompteSvcFacade) {
	h := newCompteHandler(compteService)

	comptes := rg.Group("/comptes")
	{
		comptes.GET("", h.list)
		comptes.POST("", h.create)
		comptes.GET("/:id", h.getByID)
	}
}

func (h *compteHandler) list(c *gin.Context) {
	// ?clientId= narrows the listing to one owner.
	if clientID := c.Query("clientId"); clientID != "" {
		comptes, err := h.compteService.GetComptesByClientID(c.Request.Context(), clientID)
		if err != nil {
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("failed to list accounts for client", slog.String("clientId", clientID), slog.String("error", err.Error()))
			c.JSON(http.StatusOK, []models.Compte{})
			return
		}
		c.JSON(http.StatusOK, comptes)
		return
	}

	comptes, err := h.compteService.ListComptes(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, []models.Compte{})
		return
	}
	c.JSON(http.StatusOK, comptes)
}

// getByID accepts either an account id or an account number; the service
// falls back to a list scan when the direct lookup misses.
func (h *compteHandler) getByID(c *gin.Context) {
	compte, err := h.compteService.GetCompteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to fetch account")
		return
	}
	c.JSON(http.StatusOK, compte)
}

func (h *compteHandler) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for account creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	compte, err := h.compteService.CreateCompte(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to create account")
		return
	}
	c.JSON(http.StatusCreated, compte)
}
