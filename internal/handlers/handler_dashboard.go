package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/egabank/egabank_portal/internal/core/ports/services"
	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the admin dashboard: aggregate stats plus the most
// recent global transactions. Every fetch degrades rather than failing the
// page, matching the rest of the read surface.
type dashboardHandler struct {
	bankService   portssvc.BankSvcFacade
	releveService portssvc.ReleveSvcFacade
}

func newDashboardHandler(bankService portssvc.BankSvcFacade, releveService portssvc.ReleveSvcFacade) *dashboardHandler {
	return &dashboardHandler{bankService: bankService, releveService: releveService}
}

func registerDashboardRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade, releveService portssvc.ReleveSvcFacade) {
	h := newDashboardHandler(bankService, releveService)

	rg.GET("/dashboard/stats", h.stats)
	rg.GET("/dashboard/recent-transactions", h.recent)
	rg.GET("/releves", h.releve)
}

func (h *dashboardHandler) stats(c *gin.Context) {
	stats, err := h.bankService.GetDashboardStats(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("failed to build dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, []dto.Stat{})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *dashboardHandler) recent(c *gin.Context) {
	c.JSON(http.StatusOK, h.bankService.GetRecentTransactions(c.Request.Context()))
}

func (h *dashboardHandler) releve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReleveRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind statement query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	releve, err := h.releveService.GenerateReleve(c.Request.Context(), req.NumeroCompte, req.DateDebut, req.DateFin)
	if err != nil {
		respondError(c, err, "failed to generate statement")
		return
	}
	c.JSON(http.StatusOK, releve)
}
