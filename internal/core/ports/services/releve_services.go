package services

import (
	"context"

	"github.com/egabank/egabank_portal/internal/models"
)

// ReleveSvcFacade generates account statements from backend data. Nothing is
// persisted portal-side; every call re-derives the statement.
type ReleveSvcFacade interface {
	// GenerateReleve fetches the statement for an account and date range,
	// tolerating both the JSON and the plain-text backend response.
	GenerateReleve(ctx context.Context, numero, dateDebut, dateFin string) (*models.Releve, error)
}
