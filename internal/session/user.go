package session

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the portal-side role derived from the login response. The backend
// prefixes roles with "ROLE_"; that prefix is stripped and the value
// upper-cased during normalization.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// User is the logged-in user record. It is the only piece of state this
// application keeps across requests, persisted so a restart does not force a
// new login.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Token    string `json:"token"`
}

// NormalizeRole strips the backend's ROLE_ prefix and upper-cases the value.
// An empty or unknown role defaults to CLIENT.
func NormalizeRole(raw string) Role {
	role := strings.ToUpper(strings.TrimSpace(raw))
	role = strings.TrimPrefix(role, "ROLE_")
	if role == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleClient
}

// RoleFromToken extracts a role from the access token payload without
// verifying the signature. The portal does not hold the backend's signing
// secret; the backend re-checks authorization on every call, so this is only
// used to pick the right navigation, never to grant anything.
func RoleFromToken(tokenString string) Role {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		// Last-ditch heuristic kept from the original front-end.
		if strings.Contains(strings.ToLower(tokenString), "admin") {
			return RoleAdmin
		}
		return RoleClient
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return RoleClient
	}

	if role, ok := claims["role"].(string); ok && role != "" {
		return NormalizeRole(role)
	}
	if roles, ok := claims["roles"].([]any); ok && len(roles) > 0 {
		switch first := roles[0].(type) {
		case string:
			return NormalizeRole(first)
		case map[string]any:
			for _, key := range []string{"authority", "role"} {
				if role, ok := first[key].(string); ok && role != "" {
					return NormalizeRole(role)
				}
			}
		}
	}
	if sub, _ := claims.GetSubject(); sub == "admin" {
		return RoleAdmin
	}
	if username, ok := claims["username"].(string); ok && username == "admin" {
		return RoleAdmin
	}
	return RoleClient
}
