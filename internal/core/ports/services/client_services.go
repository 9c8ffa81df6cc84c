package services

import (
	"context"

	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
)

// ClientSvcFacade wraps the backend /clients resource.
type ClientSvcFacade interface {
	// ListClients returns every client (admin).
	ListClients(ctx context.Context) ([]models.Client, error)

	// GetClientByID prefers the direct endpoint and falls back to scanning
	// the full list when the backend has no such endpoint.
	GetClientByID(ctx context.Context, id string) (*models.Client, error)

	// GetClientMe returns the logged-in client's profile.
	GetClientMe(ctx context.Context) (*models.Client, error)

	// CreateClient creates a client (admin).
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*models.Client, error)

	// UpdateClient renames the portal's French fields to the backend's
	// English ones and submits the update.
	UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*models.Client, error)

	// SearchClients filters the full list by name or email.
	SearchClients(ctx context.Context, term string) ([]models.Client, error)

	// SuspendClient suspends a client and returns the backend message.
	SuspendClient(ctx context.Context, id string) (string, error)

	// ActivateClient reactivates a client and returns the backend message.
	ActivateClient(ctx context.Context, id string) (string, error)

	// DeleteClient removes a client (admin).
	DeleteClient(ctx context.Context, id string) error
}
