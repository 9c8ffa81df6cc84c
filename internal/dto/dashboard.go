package dto

import (
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/shopspring/decimal"
)

// Stat is one tile on the admin dashboard.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ClientDashboard is the consolidated view for the logged-in client: profile
// and accounts fetched in parallel, then the most recent account's history.
type ClientDashboard struct {
	Profile      *models.Client       `json:"profile"`
	Accounts     []models.Compte      `json:"accounts"`
	Transactions []models.Transaction `json:"transactions"`
	TotalBalance decimal.Decimal      `json:"totalBalance"`
}
