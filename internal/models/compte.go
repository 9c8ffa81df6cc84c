package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompteType is the canonical account type.
type CompteType string

const (
	CompteCourant CompteType = "COURANT"
	CompteEpargne CompteType = "EPARGNE"
)

// CompteStatus is the canonical account status.
type CompteStatus string

const (
	CompteActif  CompteStatus = "ACTIF"
	CompteBloque CompteStatus = "BLOQUE"
)

// Compte is the canonical view of a bank account. NumeroCompte (the IBAN-like
// account number) is the join key used across services: several backend
// endpoints only expose the number, never the internal id.
type Compte struct {
	ID           string          `json:"id"`
	NumeroCompte string          `json:"numeroCompte"`
	Solde        decimal.Decimal `json:"solde"`
	Type         CompteType      `json:"type"`
	DateCreation time.Time       `json:"dateCreation"`
	ClientID     string          `json:"clientId"`
	ClientNom    string          `json:"clientNom"`
	Devise       string          `json:"devise"`
	Statut       CompteStatus    `json:"statut"`
}
