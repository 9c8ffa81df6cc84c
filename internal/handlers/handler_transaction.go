package handlers

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/egabank/egabank_portal/internal/core/ports/services"
	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/middleware"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/gin-gonic/gin"
)

// transactionHandler exposes the admin-side transaction endpoints: listings,
// per-account history and the three money movements.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(transactionService portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: transactionService}
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.list)
		transactions.GET("/historique/:numero", h.history)
		transactions.POST("/depot", h.deposit)
		transactions.POST("/retrait", h.withdraw)
		transactions.POST("/virement", h.transfer)
	}
}

func (h *transactionHandler) list(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filters dto.TransactionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		logger.Warn("Failed to bind transaction filters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	transactions, err := h.transactionService.GetTransactions(c.Request.Context(), filters)
	if err != nil {
		logger.Error("failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, []models.Transaction{})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *transactionHandler) history(c *gin.Context) {
	transactions, err := h.transactionService.GetHistory(
		c.Request.Context(),
		c.Param("numero"),
		c.Query("dateDebut"),
		c.Query("dateFin"),
	)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("failed to fetch account history", slog.String("numero", c.Param("numero")), slog.String("error", err.Error()))
		c.JSON(http.StatusOK, []models.Transaction{})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *transactionHandler) deposit(c *gin.Context) {
	h.operation(c, h.transactionService.Deposit)
}

func (h *transactionHandler) withdraw(c *gin.Context) {
	h.operation(c, h.transactionService.Withdraw)
}

func (h *transactionHandler) operation(c *gin.Context, op func(ctx context.Context, req dto.OperationRequest) (*dto.OperationResult, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.OperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for operation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := op(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "operation failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *transactionHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.transactionService.Transfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "transfer failed")
		return
	}
	c.JSON(http.StatusOK, result)
}
