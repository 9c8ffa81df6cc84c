package models

import "time"

// ClientStatus is the canonical client status. The backend sends either the
// English enumeration (ACTIVE/SUSPENDED) or the French one; the French form is
// the canonical one used everywhere past the normalization boundary.
type ClientStatus string

const (
	ClientActif    ClientStatus = "Actif"
	ClientSuspendu ClientStatus = "Suspendu"
)

// Client is the canonical view of a bank client as rendered by the portal.
// It is an immutable snapshot built from one backend response; nothing mutates
// it in place except the optimistic status flip after a suspend/activate call.
type Client struct {
	ID              string       `json:"id"`
	Nom             string       `json:"nom"`
	Prenom          string       `json:"prenom"`
	DateNaissance   time.Time    `json:"dateNaissance"`
	Sexe            string       `json:"sexe"`
	Adresse         string       `json:"adresse"`
	Telephone       string       `json:"telephone"`
	Email           string       `json:"email"`
	Nationalite     string       `json:"nationalite"`
	DateInscription time.Time    `json:"dateInscription"`
	Statut          ClientStatus `json:"statut"`
}
