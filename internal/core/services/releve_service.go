package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/egabank/egabank_portal/internal/backend"
	"github.com/egabank/egabank_portal/internal/core/ports"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/egabank/egabank_portal/internal/statement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReleveService requests backend-computed statements. The endpoint is
// documented as JSON but some backend versions answer with a formatted text
// block; both shapes are handled, the text one through best-effort parsing.
type ReleveService struct {
	BaseService
	gateway ports.BackendGateway
}

func NewReleveService(gateway ports.BackendGateway) *ReleveService {
	return &ReleveService{gateway: gateway}
}

func (s *ReleveService) GenerateReleve(ctx context.Context, numero, dateDebut, dateFin string) (*models.Releve, error) {
	path := fmt.Sprintf("/transactions/statement/%s?start=%s&end=%s",
		url.PathEscape(numero), url.QueryEscape(dateDebut), url.QueryEscape(dateFin))
	resp, err := s.gateway.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to generate statement for %s: %w", numero, err)
	}

	releve := &models.Releve{
		ID:           "REL-" + uuid.NewString()[:8],
		CompteID:     numero,
		NumeroCompte: numero,
		DateDebut:    parseBound(dateDebut),
		DateFin:      parseBound(dateFin),
		SoldeInitial: decimal.Zero,
		SoldeFinal:   decimal.Zero,
		Transactions: []models.Transaction{},
	}

	if obj := resp.Object(); obj != nil {
		s.fillFromJSON(releve, obj)
		return releve, nil
	}

	// Degraded path: the backend answered with its plain-text releve.
	summary := statement.Parse(resp.Text())
	releve.SoldeFinal = summary.SoldeFinal
	releve.Transactions = summary.Transactions
	if summary.NumeroCompte != "" {
		releve.NumeroCompte = summary.NumeroCompte
	}
	return releve, nil
}

func (s *ReleveService) fillFromJSON(releve *models.Releve, obj map[string]any) {
	if id, ok := obj["id"].(string); ok && id != "" {
		releve.ID = id
	}
	if accountID, ok := obj["accountId"].(string); ok && accountID != "" {
		releve.CompteID = accountID
	}
	if v, ok := obj["initialBalance"].(float64); ok {
		releve.SoldeInitial = decimal.NewFromFloat(v)
	}
	if v, ok := obj["finalBalance"].(float64); ok {
		releve.SoldeFinal = decimal.NewFromFloat(v)
	}
	releve.Transactions = backend.MapTransactions(backend.UnwrapList(obj["transactions"]))
}

func parseBound(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Now()
}
