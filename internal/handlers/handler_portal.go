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

// portalHandler serves the logged-in client's self-service surface. Every
// endpoint is scoped to the session's own accounts; the backend enforces
// ownership a second time.
type portalHandler struct {
	clientBank portssvc.ClientBankSvcFacade
}

func newPortalHandler(clientBank portssvc.ClientBankSvcFacade) *portalHandler {
	return &portalHandler{clientBank: clientBank}
}

func registerPortalRoutes(rg *gin.RouterGroup, clientBank portssvc.ClientBankSvcFacade) {
	h := newPortalHandler(clientBank)

	rg.GET("/dashboard", h.dashboard)
	rg.GET("/profil", h.profile)
	rg.GET("/comptes", h.accounts)
	rg.GET("/comptes/:numero", h.accountByNumero)
	rg.GET("/transactions", h.transactions)
	rg.POST("/virement", h.transfer)
	rg.GET("/releve", h.releve)
}

func (h *portalHandler) dashboard(c *gin.Context) {
	dashboard, err := h.clientBank.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *portalHandler) profile(c *gin.Context) {
	profile, err := h.clientBank.GetProfile(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *portalHandler) accounts(c *gin.Context) {
	accounts, err := h.clientBank.GetAccounts(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("failed to fetch accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, []models.Compte{})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *portalHandler) accountByNumero(c *gin.Context) {
	account, err := h.clientBank.GetAccountByNumero(c.Request.Context(), c.Param("numero"))
	if err != nil {
		respondError(c, err, "failed to fetch account")
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *portalHandler) transactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filters dto.TransactionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		logger.Warn("Failed to bind transaction filters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	transactions, err := h.clientBank.GetTransactions(c.Request.Context(), filters)
	if err != nil {
		logger.Error("failed to fetch transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, []models.Transaction{})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *portalHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.clientBank.PerformTransfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "transfer failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *portalHandler) releve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReleveRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind statement query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	releve, err := h.clientBank.GenerateReleve(c.Request.Context(), req.NumeroCompte, req.DateDebut, req.DateFin)
	if err != nil {
		respondError(c, err, "failed to generate statement")
		return
	}
	c.JSON(http.StatusOK, releve)
}
