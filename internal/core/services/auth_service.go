package services

import (
	"context"
	"fmt"

	"github.com/egabank/egabank_portal/internal/apperrors"
	"github.com/egabank/egabank_portal/internal/backend"
	"github.com/egabank/egabank_portal/internal/core/ports"
	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/egabank/egabank_portal/internal/session"
	"github.com/egabank/egabank_portal/internal/utils"
)

// AuthService owns login/registration and the session lifecycle.
type AuthService struct {
	BaseService
	gateway   ports.BackendGateway
	store     *session.Store
	analytics *utils.PosthogClientWrapper
}

func NewAuthService(gateway ports.BackendGateway, store *session.Store, analytics *utils.PosthogClientWrapper) *AuthService {
	return &AuthService{gateway: gateway, store: store, analytics: analytics}
}

// Login authenticates against the backend. The response shape varies across
// backend versions: the token arrives as token or accessToken, and the role
// may be top-level, nested under user, or only present inside the JWT
// payload. All three are handled; the session is persisted on success.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*session.User, error) {
	resp, err := s.gateway.Post(ctx, "/auth/login", req)
	if err != nil {
		return nil, err
	}

	obj := resp.Object()
	if obj == nil {
		return nil, fmt.Errorf("login response is not an object: %w", apperrors.ErrValidation)
	}

	token := loginString(obj, "token")
	if token == "" {
		token = loginString(obj, "accessToken")
	}
	if token == "" {
		return nil, fmt.Errorf("login response carries no token: %w", apperrors.ErrValidation)
	}

	nested, _ := obj["user"].(map[string]any)

	role := loginString(obj, "role")
	if role == "" && nested != nil {
		role = loginString(nested, "role")
	}
	var resolved session.Role
	if role != "" {
		resolved = session.NormalizeRole(role)
	} else {
		resolved = session.RoleFromToken(token)
	}

	user := session.User{
		ID:       coalesceID(obj, nested),
		Username: coalesce(req.Username, loginString(obj, "username"), nestedString(nested, "username")),
		Nom:      coalesce(loginString(obj, "lastName"), nestedString(nested, "lastName"), loginString(obj, "nom")),
		Prenom:   coalesce(loginString(obj, "firstName"), nestedString(nested, "firstName"), loginString(obj, "prenom")),
		Email:    coalesce(loginString(obj, "email"), nestedString(nested, "email")),
		Role:     resolved,
		Token:    token,
	}

	if err := s.store.Save(user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.LogInfo(ctx, "login succeeded", "username", user.Username, "role", string(user.Role))
	s.analytics.Enqueue(user.Username, "login", map[string]any{"role": string(user.Role)})
	return &user, nil
}

// Register forwards the registration and returns the created-user echo as a
// normalized client. No session is opened; the user logs in afterwards.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.Client, error) {
	resp, err := s.gateway.Post(ctx, "/auth/register", req)
	if err != nil {
		return nil, err
	}
	return backend.MapClient(resp.Object()), nil
}

// Logout tears down the session and its persisted record.
func (s *AuthService) Logout() {
	if user := s.store.Current(); user != nil {
		s.analytics.Enqueue(user.Username, "logout", nil)
	}
	s.store.Clear()
}

func loginString(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func nestedString(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}
	return loginString(obj, key)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// coalesceID renders the user id from the top-level or nested object,
// whether the backend sent it as a number or a string.
func coalesceID(obj, nested map[string]any) string {
	for _, source := range []map[string]any{obj, nested} {
		if source == nil {
			continue
		}
		switch v := source["id"].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}
