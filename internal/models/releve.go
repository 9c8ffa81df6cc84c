package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Releve is a generated, read-only statement for one account over a date
// range. It is never persisted by the portal; every request re-derives it
// from backend data.
type Releve struct {
	ID           string          `json:"id"`
	CompteID     string          `json:"compteId"`
	NumeroCompte string          `json:"numeroCompte"`
	DateDebut    time.Time       `json:"dateDebut"`
	DateFin      time.Time       `json:"dateFin"`
	SoldeInitial decimal.Decimal `json:"soldeInitial"`
	SoldeFinal   decimal.Decimal `json:"soldeFinal"`
	Transactions []Transaction   `json:"transactions"`
}
