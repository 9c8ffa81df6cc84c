package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/egabank/egabank_portal/internal/apperrors"
	"github.com/egabank/egabank_portal/internal/backend"
	"github.com/egabank/egabank_portal/internal/core/ports"
	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/egabank/egabank_portal/internal/utils/mapping"
)

// ClientService wraps the backend /clients resource.
type ClientService struct {
	BaseService
	gateway ports.BackendGateway
}

func NewClientService(gateway ports.BackendGateway) *ClientService {
	return &ClientService{gateway: gateway}
}

func (s *ClientService) ListClients(ctx context.Context) ([]models.Client, error) {
	resp, err := s.gateway.Get(ctx, "/clients")
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return backend.MapClients(backend.UnwrapList(resp.JSON)), nil
}

// GetClientByID prefers the direct endpoint. Some backend deployments do not
// serve it; in that case the full list is fetched and scanned. This is a
// compatibility shim for an evolving backend contract, not a cache: every
// miss pays for a full list fetch.
func (s *ClientService) GetClientByID(ctx context.Context, id string) (*models.Client, error) {
	resp, err := s.gateway.Get(ctx, "/clients/"+id)
	if err == nil {
		if obj := resp.Object(); obj != nil {
			return backend.MapClient(obj), nil
		}
	} else if errors.Is(err, apperrors.ErrUnauthorized) {
		return nil, err
	}

	clients, err := s.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, fmt.Errorf("client %s: %w", id, apperrors.ErrNotFound)
}

func (s *ClientService) GetClientMe(ctx context.Context) (*models.Client, error) {
	resp, err := s.gateway.Get(ctx, "/clients/me")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return backend.MapClient(resp.Object()), nil
}

func (s *ClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*models.Client, error) {
	resp, err := s.gateway.Post(ctx, "/clients", req)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return backend.MapClient(resp.Object()), nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*models.Client, error) {
	resp, err := s.gateway.Put(ctx, "/clients/"+id, mapping.ToClientUpdateBody(req))
	if err != nil {
		return nil, fmt.Errorf("failed to update client %s: %w", id, err)
	}
	return backend.MapClient(resp.Object()), nil
}

// SearchClients filters the full list by last name, first name or email.
// The backend has no search endpoint.
func (s *ClientService) SearchClients(ctx context.Context, term string) ([]models.Client, error) {
	clients, err := s.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	matches := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Nom), term) ||
			strings.Contains(strings.ToLower(c.Prenom), term) ||
			strings.Contains(strings.ToLower(c.Email), term) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (s *ClientService) SuspendClient(ctx context.Context, id string) (string, error) {
	return s.changeStatus(ctx, id, "suspend")
}

func (s *ClientService) ActivateClient(ctx context.Context, id string) (string, error) {
	return s.changeStatus(ctx, id, "activate")
}

func (s *ClientService) changeStatus(ctx context.Context, id, action string) (string, error) {
	resp, err := s.gateway.Put(ctx, "/clients/"+id+"/"+action, map[string]any{})
	if err != nil {
		return "", fmt.Errorf("failed to %s client %s: %w", action, id, err)
	}
	return resp.Message(), nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.gateway.Delete(ctx, "/clients/"+id); err != nil {
		return fmt.Errorf("failed to delete client %s: %w", id, err)
	}
	return nil
}
