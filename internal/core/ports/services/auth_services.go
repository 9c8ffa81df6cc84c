package services

import (
	"context"

	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/egabank/egabank_portal/internal/session"
)

// AuthSvcFacade owns the login/registration flow and the session lifecycle.
type AuthSvcFacade interface {
	// Login authenticates against the backend, derives the role from the
	// response (or the decoded token) and persists the session.
	Login(ctx context.Context, req dto.LoginRequest) (*session.User, error)

	// Register forwards a registration to the backend and returns the created
	// user echo as a normalized client.
	Register(ctx context.Context, req dto.RegisterRequest) (*models.Client, error)

	// Logout tears down the current session.
	Logout()
}
