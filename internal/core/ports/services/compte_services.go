package services

import (
	"context"

	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
)

// CompteSvcFacade wraps the backend /accounts resource.
type CompteSvcFacade interface {
	// ListComptes returns every account (admin), tolerating the different
	// list envelopes the backend serves.
	ListComptes(ctx context.Context) ([]models.Compte, error)

	// MyAccounts returns the logged-in client's accounts.
	MyAccounts(ctx context.Context) ([]models.Compte, error)

	// GetComptesByClientID returns the accounts owned by one client.
	GetComptesByClientID(ctx context.Context, clientID string) ([]models.Compte, error)

	// GetCompteByID prefers the direct endpoint; on a miss it scans the full
	// list for a match by id or by account number.
	GetCompteByID(ctx context.Context, id string) (*models.Compte, error)

	// GetCompteByNumero locates an account by its number.
	GetCompteByNumero(ctx context.Context, numero string) (*models.Compte, error)

	// CreateCompte opens an account for a client (admin).
	CreateCompte(ctx context.Context, req dto.CreateCompteRequest) (*models.Compte, error)
}
