package dto

import (
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/shopspring/decimal"
)

// OperationRequest is a deposit or withdrawal submitted from the portal in
// its French vocabulary.
type OperationRequest struct {
	NumeroCompte string          `json:"numeroCompte" binding:"required"`
	Montant      decimal.Decimal `json:"montant"`
	Description  string          `json:"description"`
}

// VirementRequest is a transfer between two accounts. The mapping layer
// renames compteSource/compteDestination/montant to the backend's
// accountNumber/targetAccountNumber/amount.
type VirementRequest struct {
	CompteSource      string          `json:"compteSource" binding:"required"`
	CompteDestination string          `json:"compteDestination" binding:"required"`
	Montant           decimal.Decimal `json:"montant"`
	Description       string          `json:"description"`
}

// TransactionFilters narrows a history query. When CompteID is set the
// by-account history endpoint is used; otherwise the admin-wide list.
type TransactionFilters struct {
	CompteID  string `form:"compteId"`
	DateDebut string `form:"dateDebut"`
	DateFin   string `form:"dateFin"`
}

// OperationResult is what a mutating transaction call yields. The backend
// answers some of these endpoints with a normalized transaction and others
// with a bare confirmation string; both shapes are currently valid.
type OperationResult struct {
	Transaction *models.Transaction `json:"transaction,omitempty"`
	Message     string              `json:"message,omitempty"`
}
