package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/egabank/egabank_portal/internal/apperrors"
	"github.com/egabank/egabank_portal/internal/backend"
	"github.com/egabank/egabank_portal/internal/core/ports"
	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/egabank/egabank_portal/internal/utils/mapping"
)

// CompteService wraps the backend /accounts resource.
type CompteService struct {
	BaseService
	gateway ports.BackendGateway
}

func NewCompteService(gateway ports.BackendGateway) *CompteService {
	return &CompteService{gateway: gateway}
}

func (s *CompteService) ListComptes(ctx context.Context) ([]models.Compte, error) {
	resp, err := s.gateway.Get(ctx, "/accounts")
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return backend.MapComptes(backend.UnwrapList(resp.JSON)), nil
}

func (s *CompteService) MyAccounts(ctx context.Context) ([]models.Compte, error) {
	resp, err := s.gateway.Get(ctx, "/accounts/my-accounts")
	if err != nil {
		return nil, fmt.Errorf("failed to list my accounts: %w", err)
	}
	return backend.MapComptes(backend.UnwrapList(resp.JSON)), nil
}

func (s *CompteService) GetComptesByClientID(ctx context.Context, clientID string) ([]models.Compte, error) {
	resp, err := s.gateway.Get(ctx, "/accounts?clientId="+url.QueryEscape(clientID))
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for client %s: %w", clientID, err)
	}
	return backend.MapComptes(backend.UnwrapList(resp.JSON)), nil
}

// GetCompteByID tries the direct endpoint first. The backend only serves
// accounts by number on some deployments, so a miss falls back to fetching
// the full list and scanning for a match by id or by account number.
func (s *CompteService) GetCompteByID(ctx context.Context, id string) (*models.Compte, error) {
	resp, err := s.gateway.Get(ctx, "/accounts/"+url.PathEscape(id))
	if err == nil {
		if obj := resp.Object(); obj != nil {
			return backend.MapCompte(obj), nil
		}
	} else if errors.Is(err, apperrors.ErrUnauthorized) {
		return nil, err
	}

	s.GetLogger(ctx).Debug("direct account endpoint unavailable, scanning the list", "id", id)
	comptes, err := s.ListComptes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range comptes {
		if comptes[i].ID == id || comptes[i].NumeroCompte == id {
			return &comptes[i], nil
		}
	}
	return nil, fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
}

// GetCompteByNumero locates an account by its number, the cross-service join
// key. The backend has no lookup endpoint for it, so the list is scanned.
func (s *CompteService) GetCompteByNumero(ctx context.Context, numero string) (*models.Compte, error) {
	comptes, err := s.ListComptes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range comptes {
		if comptes[i].NumeroCompte == numero {
			return &comptes[i], nil
		}
	}
	return nil, fmt.Errorf("account %s: %w", numero, apperrors.ErrNotFound)
}

func (s *CompteService) CreateCompte(ctx context.Context, req dto.CreateCompteRequest) (*models.Compte, error) {
	resp, err := s.gateway.Post(ctx, "/accounts", mapping.ToCompteCreateBody(req))
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return backend.MapCompte(resp.Object()), nil
}
