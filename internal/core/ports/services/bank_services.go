package services

import (
	"context"

	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
)

// BankSvcFacade aggregates resources for the admin dashboard.
type BankSvcFacade interface {
	// GetDashboardStats fetches clients, accounts and transactions
	// concurrently, each degrading to empty on failure, and folds them into
	// dashboard tiles.
	GetDashboardStats(ctx context.Context) ([]dto.Stat, error)

	// GetRecentTransactions returns the ten most recent global transactions,
	// degrading to empty on failure.
	GetRecentTransactions(ctx context.Context) []models.Transaction
}

// ClientBankSvcFacade composes the resource services into the logged-in
// client's consolidated views.
type ClientBankSvcFacade interface {
	// GetDashboard fetches profile and accounts in parallel, then the first
	// account's history as a dependent fetch.
	GetDashboard(ctx context.Context) (*dto.ClientDashboard, error)

	// GetProfile returns the logged-in client's profile.
	GetProfile(ctx context.Context) (*models.Client, error)

	// GetAccounts returns the logged-in client's accounts.
	GetAccounts(ctx context.Context) ([]models.Compte, error)

	// GetAccountByNumero locates one of the client's accounts by number.
	GetAccountByNumero(ctx context.Context, numero string) (*models.Compte, error)

	// GetTransactions returns the client's history per the filters.
	GetTransactions(ctx context.Context, filters dto.TransactionFilters) ([]models.Transaction, error)

	// PerformTransfer submits a transfer in the portal vocabulary.
	PerformTransfer(ctx context.Context, req dto.VirementRequest) (*dto.OperationResult, error)

	// GenerateReleve produces a statement for one of the client's accounts.
	GenerateReleve(ctx context.Context, numero, dateDebut, dateFin string) (*models.Releve, error)
}
