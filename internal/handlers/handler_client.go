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

// clientHandler exposes the admin-side client management endpoints.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(clientService portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: clientService}
}

func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.GET("", h.list)
		clients.GET("/search", h.search)
		clients.POST("", h.create)
		clients.GET("/:id", h.getByID)
		clients.PUT("/:id", h.update)
		clients.PUT("/:id/suspend", h.suspend)
		clients.PUT("/:id/activate", h.activate)
		clients.DELETE("/:id", h.delete)
	}
}

// list returns every client, degrading to an empty list when the backend is
// unreachable so the admin table still renders.
func (h *clientHandler) list(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("failed to list clients", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, []models.Client{})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *clientHandler) search(c *gin.Context) {
	term := c.Query("q")
	clients, err := h.clientService.SearchClients(c.Request.Context(), term)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("client search failed", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, []models.Client{})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *clientHandler) getByID(c *gin.Context) {
	client, err := h.clientService.GetClientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to fetch client")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *clientHandler) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for client creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to create client")
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *clientHandler) update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for client update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "failed to update client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// suspend returns the backend confirmation plus the flipped status so the
// admin view can update in place without refetching the list.
func (h *clientHandler) suspend(c *gin.Context) {
	msg, err := h.clientService.SuspendClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to suspend client")
		return
	}
	c.JSON(http.StatusOK, dto.StatusChangeResponse{Message: msg, Statut: string(models.ClientSuspendu)})
}

func (h *clientHandler) activate(c *gin.Context) {
	msg, err := h.clientService.ActivateClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to activate client")
		return
	}
	c.JSON(http.StatusOK, dto.StatusChangeResponse{Message: msg, Statut: string(models.ClientActif)})
}

func (h *clientHandler) delete(c *gin.Context) {
	if err := h.clientService.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete client")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client supprimé avec succès"})
}
