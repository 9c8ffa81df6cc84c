package mapping

import (
	"strconv"

	"github.com/egabank/egabank_portal/internal/dto"
)

// ClientUpdateBody is what the backend client-update endpoint expects.
type ClientUpdateBody struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// ToClientUpdateBody renames the portal's French update fields to the
// backend's English ones.
func ToClientUpdateBody(req dto.UpdateClientRequest) ClientUpdateBody {
	return ClientUpdateBody{
		FirstName: req.Prenom,
		LastName:  req.Nom,
		Email:     req.Email,
		Address:   req.Adresse,
	}
}

// CompteCreateBody is what the backend account-creation endpoint expects:
// a numeric client id and the account type.
type CompteCreateBody struct {
	ClientID    int    `json:"clientId"`
	AccountType string `json:"accountType"`
}

// ToCompteCreateBody converts the portal creation request, coercing the
// string client id to the numeric form the backend requires.
func ToCompteCreateBody(req dto.CreateCompteRequest) CompteCreateBody {
	clientID, _ := strconv.Atoi(req.ClientID)
	return CompteCreateBody{
		ClientID:    clientID,
		AccountType: req.Type,
	}
}
